package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
)

// ResourceSystem advances hunger and applies its consequences
type ResourceSystem struct{}

// NewResourceSystem creates a new resource system
func NewResourceSystem() *ResourceSystem {
	return &ResourceSystem{}
}

// Name returns the system's name
func (sys *ResourceSystem) Name() string {
	return "resource"
}

// Priority returns the system's stage priority
func (sys *ResourceSystem) Priority() int {
	return parameter.PriorityResource
}

// Update raises hunger, enters berserk, applies starvation and regeneration in that order
func (sys *ResourceSystem) Update(ctx *engine.Context, s *engine.State) {
	c := &s.Creature
	profile := ctx.Profile(c.Variant)

	c.Starve(parameter.HungerPerTurn)

	enraged := false
	if !c.Berserk && c.HungerAbove(parameter.BerserkThreshold) {
		c.Berserk = true
		enraged = true
		s.Message = "BERSERK! Hunger takes over!"
		s.Logf(event.SeverityDamage, "BERSERK MODE!")
		ctx.Emit(event.CueBerserk, c.Pos)
		ctx.Logger.Info("berserk entered", zap.Int("turn", s.Turn), zap.Int("hunger", c.Hunger))
	}

	if c.HungerAbove(parameter.StarveThreshold) {
		damage := parameter.StarveDamage
		if profile.Regenerates {
			damage = parameter.StarveDamageRegen
		}
		c.Hurt(damage)
		if !enraged {
			s.Message = "Starving!"
		}
		s.Logf(event.SeverityDamage, "Starving! -%g HP", damage)
		s.Flash(parameter.FlashStarve)
		ctx.Emit(event.CueStarve, c.Pos)
	}

	if profile.Regenerates && c.HP < c.MaxHP {
		c.Heal(parameter.RegenPerTurn)
		s.Logf(event.SeverityHeal, "Regenerated +%g HP", parameter.RegenPerTurn)
	}
}
