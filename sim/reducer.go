package sim

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/system"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

// Engine is the pure transition function over game states
// Published states are never mutated; every transition works on a clone
// Engine is not safe for concurrent use; Host serializes access
type Engine struct {
	ctx     *engine.Context
	turns   *TurnEngine
	combat  *system.CombatSystem
	planner system.BerserkPlanner
}

// NewEngine wires the transition function to a context
func NewEngine(ctx *engine.Context) *Engine {
	return &Engine{
		ctx:    ctx,
		turns:  NewTurnEngine(),
		combat: system.NewCombatSystem(),
	}
}

// Context exposes the transition context
func (e *Engine) Context() *engine.Context {
	return e.ctx
}

// Apply handles an external command and returns the next state with its feedback cues
// Rejected commands return the input state unchanged, except for advisory messages
func (e *Engine) Apply(s *engine.State, cmd Command) (*engine.State, []engine.Effect) {
	if cmd.Kind == CmdNewGame {
		next := e.newGame(cmd)
		return next, e.ctx.Drain()
	}
	if s == nil || s.GameOver || s.Creature.Berserk || s.Creature.ActionPoints <= 0 {
		return s, nil
	}

	// a step clamped at the city edge changes nothing
	if cmd.Kind == CmdMove && s.Grid.Clamp(s.Creature.Pos.Add(cmd.Dir)) == s.Creature.Pos {
		return s, nil
	}

	next := s.Clone()
	switch cmd.Kind {
	case CmdMove:
		e.step(next, cmd.Dir)
	case CmdWait:
		e.endTurn(next)
	case CmdRanged:
		if !e.combat.Breath(e.ctx, next) {
			return s, nil
		}
		e.turns.Resolve(e.ctx, next)
	case CmdThrow:
		if !e.combat.Throw(e.ctx, next) {
			return s, nil
		}
	case CmdNewGame:
	}
	return next, e.ctx.Drain()
}

// AutoStep performs one autonomous berserk step
// It does nothing unless the creature is berserk, alive and has action points left
func (e *Engine) AutoStep(s *engine.State) (*engine.State, []engine.Effect) {
	if !CanAutoStep(s) {
		return s, nil
	}

	next := s.Clone()
	dir, ok := e.planner.Plan(e.ctx, next)
	if !ok {
		e.endTurn(next)
	} else {
		e.step(next, dir)
	}
	return next, e.ctx.Drain()
}

// CanAutoStep reports whether an autonomous step is due for s
func CanAutoStep(s *engine.State) bool {
	return s != nil && s.Creature.Berserk && !s.GameOver && s.Creature.ActionPoints > 0
}

// FadeFlash decays the damage flash by one tick
// The copy shares the grid and overlay lists; neither is written by a fade
func FadeFlash(s *engine.State) *engine.State {
	if s == nil || s.DamageFlash <= 0 {
		return s
	}
	next := *s
	next.DamageFlash--
	return &next
}

// step spends an action point on an accepted move and resolves the turn when none are left
func (e *Engine) step(s *engine.State, dir core.Direction) {
	if !e.combat.Move(e.ctx, s, dir) || s.GameOver {
		return
	}
	s.Creature.ActionPoints--
	if s.Creature.ActionPoints <= 0 {
		e.turns.Resolve(e.ctx, s)
	}
}

func (e *Engine) endTurn(s *engine.State) {
	s.Creature.ActionPoints = 0
	e.turns.Resolve(e.ctx, s)
}

// newGame generates a city and places the chosen creature
// A non-zero seed reseeds the generator so the whole game replays identically
func (e *Engine) newGame(cmd Command) *engine.State {
	if cmd.Seed != 0 {
		e.ctx.Rand = vmath.NewFastRand(cmd.Seed)
	}
	e.ctx.Drain()

	variant := cmd.Variant
	profile := e.ctx.Profile(variant)
	if profile == nil {
		variant = e.ctx.Profiles.Variants()[0]
		profile = e.ctx.Profile(variant)
	}

	layout := world.Generate(e.ctx.Rand)
	wind := system.RandomDirection(e.ctx.Rand)

	id := uuid.New()
	if r, ok := e.ctx.Rand.(io.Reader); ok {
		if seeded, err := uuid.NewRandomFromReader(r); err == nil {
			id = seeded
		}
	}

	s := engine.NewState(id, layout, profile, wind)
	e.ctx.Logger.Info("new game",
		zap.Stringer("id", id),
		zap.String("variant", string(variant)),
		zap.Uint64("seed", cmd.Seed),
	)
	return s
}
