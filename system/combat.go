package system

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

// CombatSystem resolves end-of-turn contact damage and every creature action
type CombatSystem struct{}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Name returns the system's name
func (sys *CombatSystem) Name() string {
	return "combat"
}

// Priority returns the system's stage priority
func (sys *CombatSystem) Priority() int {
	return parameter.PriorityContact
}

// Update applies contact damage from every enemy within range as a single hit
func (sys *CombatSystem) Update(ctx *engine.Context, s *engine.State) {
	c := &s.Creature
	factor := 1.0
	if ctx.Profile(c.Variant).Armored {
		factor = parameter.ArmorFactor
	}

	var byType [component.EnemyTypeCount]float64
	total := 0.0
	for _, e := range s.Enemies {
		if vmath.Chebyshev(e.Pos, c.Pos) <= parameter.ContactRange {
			d := e.Type.ContactDamage() * factor
			byType[e.Type] += d
			total += d
		}
	}
	if total <= 0 {
		return
	}

	c.Hurt(total)
	s.Message = fmt.Sprintf("Took %.1f damage!", total)
	s.Logf(event.SeverityDamage, "%s", ContactBreakdown(byType))
	s.Flash(parameter.FlashContact)
	ctx.Emit(event.CueHit, c.Pos)
}

// ContactBreakdown formats per-type damage as "tank: -1.5, heli: -0.8"
func ContactBreakdown(byType [component.EnemyTypeCount]float64) string {
	parts := make([]string, 0, len(byType))
	for _, t := range component.EnemyTypes {
		if byType[t] > 0 {
			parts = append(parts, fmt.Sprintf("%s: -%.1f", t, byType[t]))
		}
	}
	return strings.Join(parts, ", ")
}

// Move resolves one step attempt in dir and reports whether it spent an action point
// Rejected steps (edge, water) leave the creature in place; the power plant ends the game
func (sys *CombatSystem) Move(ctx *engine.Context, s *engine.State, dir core.Direction) bool {
	c := &s.Creature
	profile := ctx.Profile(c.Variant)

	target := s.Grid.Clamp(c.Pos.Add(dir))
	if target == c.Pos {
		return false
	}

	switch s.Grid.TypeAt(target) {
	case world.CellDeepWater:
		s.Message = "Too deep!"
		ctx.Emit(event.CueBlocked, target)
		return false
	case world.CellShallowWater:
		if !profile.CanSwim {
			s.Message = "Can't swim!"
			ctx.Emit(event.CueBlocked, target)
			return false
		}
	case world.CellPowerPlant:
		c.LastFacing = dir
		c.HP = 0
		s.Message = "POWER PLANT EXPLOSION!"
		s.Logf(event.SeverityDamage, "POWER PLANT EXPLOSION!")
		s.Flash(parameter.FlashPowerPlant)
		s.End(engine.CauseDestroyed)
		ctx.Emit(event.CueExplosion, target)
		ctx.Logger.Info("creature stepped on power plant", zap.Int("turn", s.Turn))
		return false
	}

	c.LastFacing = dir
	origin := c.Pos

	sys.eatCivilians(ctx, s, target)
	sys.takeEnemies(ctx, s, target, profile.CanGrab)

	if s.Grid.TypeAt(target).Smashable() {
		prev, destroyed := s.Grid.Strike(target, profile.MeleeDamage)
		if destroyed {
			sys.destroyed(ctx, s, target, prev)
			c.Pos = target
		} else {
			after := s.Grid.At(target)
			s.Message = fmt.Sprintf("Smashing! (%d/%d)", after.HP, after.MaxHP)
			s.Score += parameter.ScoreSmash
			ctx.Emit(event.CueSmash, target)
		}
	} else {
		c.Pos = target
		ctx.Emit(event.CueStep, target)
	}

	if s.FireAt(c.Pos) >= 0 {
		c.Hurt(parameter.FireStepDamage)
		s.Logf(event.SeverityDamage, "Burned! -%gHP", parameter.FireStepDamage)
		s.Flash(parameter.FlashBurn)
		ctx.Emit(event.CueBurn, c.Pos)
	}

	if profile.FireTrail && c.Pos != origin && s.FireAt(origin) < 0 {
		s.Ignite(origin, parameter.FireLife)
	}

	if c.HP <= 0 {
		s.Message = "DESTROYED!"
		s.End(engine.CauseDestroyed)
		ctx.Emit(event.CueGameOver, c.Pos)
	}
	return true
}

// eatCivilians consumes every civilian on p
func (sys *CombatSystem) eatCivilians(ctx *engine.Context, s *engine.State, p core.Point) {
	c := &s.Creature
	s.Civilians = slices.DeleteFunc(s.Civilians, func(v component.Civilian) bool {
		if v.Pos != p {
			return false
		}
		c.Feed(parameter.EatHungerRelief)
		c.Heal(parameter.EatHeal)
		s.Score += parameter.ScoreEat
		s.Logf(event.SeverityHeal, "Ate civilian! -%d hunger +%gHP", parameter.EatHungerRelief, parameter.EatHeal)
		ctx.Emit(event.CueEat, p)
		sys.calm(ctx, s)
		return true
	})
}

// takeEnemies grabs the first enemy on p when possible and crushes the rest
func (sys *CombatSystem) takeEnemies(ctx *engine.Context, s *engine.State, p core.Point, canGrab bool) {
	c := &s.Creature
	s.Enemies = slices.DeleteFunc(s.Enemies, func(e component.Enemy) bool {
		if e.Pos != p {
			return false
		}
		if canGrab && c.Carrying == nil {
			c.Carrying = &component.Payload{Type: e.Type}
			s.Logf(event.SeverityInfo, "Grabbed %s!", e.Type)
			ctx.Emit(event.CueGrab, p)
			return true
		}
		c.Feed(parameter.CrushHungerRelief)
		c.Heal(parameter.CrushHeal)
		s.Score += e.Type.CrushScore()
		s.Kills++
		s.Logf(event.SeverityHeal, "Crushed %s! +%gHP", e.Type, parameter.CrushHeal)
		ctx.Emit(event.CueCrush, p)
		sys.calm(ctx, s)
		return true
	})
}

// calm leaves berserk once a meal drops hunger below the calm threshold
func (sys *CombatSystem) calm(ctx *engine.Context, s *engine.State) {
	c := &s.Creature
	if !c.Berserk || !c.HungerBelow(parameter.CalmThreshold) {
		return
	}
	c.Berserk = false
	s.Logf(event.SeverityInfo, "Regained control!")
	ctx.Emit(event.CueCalm, c.Pos)
	ctx.Logger.Info("berserk ended", zap.Int("turn", s.Turn), zap.Int("hunger", c.Hunger))
}

// Throw releases the carried payload along the last facing; it costs no action point
// Reports false when nothing is carried
func (sys *CombatSystem) Throw(ctx *engine.Context, s *engine.State) bool {
	c := &s.Creature
	if c.Carrying == nil {
		return false
	}
	payload := c.Carrying.Type
	c.Carrying = nil
	ctx.Emit(event.CueThrow, c.Pos)

	for i := 1; i <= parameter.ThrowRange; i++ {
		p := c.Pos.Step(c.LastFacing, i)
		if !s.Grid.InBounds(p) {
			break
		}

		if idx := s.EnemyAt(p); idx >= 0 {
			e := &s.Enemies[idx]
			e.HP -= parameter.ThrowDamage
			s.Score += parameter.ScoreThrowEnemy
			s.Logf(event.SeverityScore, "Threw %s at %s!", payload, e.Type)
			ctx.Emit(event.CueHit, p)
			if e.HP <= 0 {
				s.Enemies = slices.Delete(s.Enemies, idx, idx+1)
				s.Kills++
			}
			return true
		}

		t := s.Grid.TypeAt(p)
		if t.IsStructure() {
			s.Grid.Damage(p, parameter.ThrowDamage)
			s.Score += parameter.ScoreThrowStructure
			s.Logf(event.SeverityScore, "Threw %s at %s!", payload, t.Label())
			ctx.Emit(event.CueSmash, p)
			return true
		}
		if t.IsWater() {
			break
		}
	}

	s.Logf(event.SeverityInfo, "Threw %s into the distance", payload)
	return true
}

// Breath scans the four cardinal rays, killing occupants and igniting the first target per ray
// Reports false for variants without a ranged attack; on success all action points are spent
func (sys *CombatSystem) Breath(ctx *engine.Context, s *engine.State) bool {
	c := &s.Creature
	reach := ctx.Profile(c.Variant).BreathRange
	if reach <= 0 {
		return false
	}

	s.Logf(event.SeverityInfo, "FIRE BREATH!")
	ctx.Emit(event.CueBreath, c.Pos)

	for _, d := range core.Cardinals {
		for i := 1; i <= reach; i++ {
			p := c.Pos.Step(d, i)
			if !s.Grid.InBounds(p) {
				break
			}

			s.Civilians = slices.DeleteFunc(s.Civilians, func(v component.Civilian) bool {
				return v.Pos == p
			})
			s.Enemies = slices.DeleteFunc(s.Enemies, func(e component.Enemy) bool {
				if e.Pos != p {
					return false
				}
				s.Score += parameter.ScoreBreathKill
				s.Kills++
				return true
			})

			if !s.Grid.TypeAt(p).BreathTarget() {
				continue
			}
			if s.FireAt(p) < 0 {
				s.Ignite(p, parameter.FireLife)
			}
			prev, destroyed := s.Grid.Strike(p, parameter.BreathDamage)
			if destroyed {
				sys.destroyed(ctx, s, p, prev)
			}
			break
		}
	}

	c.ActionPoints = 0
	return true
}
