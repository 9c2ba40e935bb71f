package sim

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/system"
)

// TurnEngine runs the ordered turn stages once the creature's action points are spent
type TurnEngine struct {
	stages []engine.System
}

// NewTurnEngine registers the standard stages
func NewTurnEngine() *TurnEngine {
	te := &TurnEngine{}
	te.Add(system.NewFireSystem())
	te.Add(system.NewResourceSystem())
	te.Add(system.NewSpawnSystem())
	te.Add(system.NewMovementSystem())
	te.Add(system.NewCombatSystem())
	te.Add(system.NewWindSystem())
	return te
}

// Add registers a stage and keeps stages ordered by priority
func (te *TurnEngine) Add(sys engine.System) {
	te.stages = append(te.stages, sys)
	sort.SliceStable(te.stages, func(i, j int) bool {
		return te.stages[i].Priority() < te.stages[j].Priority()
	})
}

// Stages returns stage names in run order
func (te *TurnEngine) Stages() []string {
	names := make([]string, len(te.stages))
	for i, s := range te.stages {
		names[i] = s.Name()
	}
	return names
}

// Resolve completes the current turn in place; finished games are left untouched
func (te *TurnEngine) Resolve(ctx *engine.Context, s *engine.State) {
	if s.GameOver {
		return
	}

	c := &s.Creature
	c.ActionPoints = ctx.Profile(c.Variant).Speed

	for _, sys := range te.stages {
		sys.Update(ctx, s)
	}

	switch {
	case c.HP <= 0:
		s.Message = "DESTROYED!"
		s.End(engine.CauseDestroyed)
	case c.Hunger >= c.MaxHunger:
		s.Message = "STARVED!"
		s.End(engine.CauseStarved)
	}
	if s.GameOver {
		ctx.Emit(event.CueGameOver, c.Pos)
		ctx.Logger.Info("game over",
			zap.Stringer("cause", s.Cause),
			zap.Int("turn", s.Turn),
			zap.Int("score", s.Score),
		)
	}

	s.Turn++
	ctx.Emit(event.CueTurn, c.Pos)
}
