package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

// destroyed applies the reward for a cell the creature just brought down
// The grid has already converted the cell; prev is what stood there
func (sys *CombatSystem) destroyed(ctx *engine.Context, s *engine.State, p core.Point, prev world.Cell) {
	c := &s.Creature
	flee := 0

	switch prev.Type {
	case world.CellMilbase:
		s.Score += parameter.ScoreMilbase
		s.BaseAlive = false
		s.Message = "MILITARY BASE DESTROYED!"
		s.Logf(event.SeverityScore, "Military Base down! +%d", parameter.ScoreMilbase)
		flee = parameter.FleeMilbase
	case world.CellPolice:
		s.Score += parameter.ScorePolice
		s.Message = "POLICE STATION DOWN!"
		s.Logf(event.SeverityScore, "Police Station down! +%d", parameter.ScorePolice)
		flee = parameter.FleePolice
	case world.CellCityHall:
		s.Score += parameter.ScoreCityHall
		s.Message = "CITY HALL DEMOLISHED!"
		s.Logf(event.SeverityScore, "City Hall! +%d", parameter.ScoreCityHall)
		flee = parameter.FleeCityHall
	case world.CellLab:
		s.Score += parameter.ScoreLab
		c.Heal(parameter.LabHeal)
		s.Message = "LAB DESTROYED! +5 HP!"
		s.Logf(event.SeverityHeal, "Lab! +%d, +%gHP", parameter.ScoreLab, parameter.LabHeal)
	case world.CellPark:
		s.Message = "Trees crushed!"
	case world.CellBuilding:
		award := parameter.ScoreBuildingPerHP * prev.MaxHP
		s.Score += award
		s.Logf(event.SeverityScore, "Building! +%d", award)
		flee = fleeCount(prev.Size)
		if vmath.Chance(ctx.Rand, parameter.SnackChance) {
			c.Feed(parameter.SnackHungerRelief)
			c.Heal(parameter.SnackHeal)
			s.Logf(event.SeverityHeal, "Snacks! -%d hunger +%gHP", parameter.SnackHungerRelief, parameter.SnackHeal)
		}
	case world.CellPowerPlant:
		sys.chainExplosion(ctx, s, p)
	case world.CellEmpty, world.CellRoad, world.CellRubble, world.CellBridge,
		world.CellDeepWater, world.CellShallowWater:
		return
	}

	ctx.Emit(event.CueDestroy, p)
	ctx.Logger.Debug("structure destroyed", zap.Stringer("type", prev.Type), zap.Int("x", p.X), zap.Int("y", p.Y))

	for i := 0; i < flee && vmath.Chance(ctx.Rand, parameter.FleeChance); i++ {
		q := p.Add(RandomDirection(ctx.Rand))
		if !s.Grid.InBounds(q) {
			continue
		}
		if t := s.Grid.TypeAt(q); t == world.CellRoad || t == world.CellRubble {
			s.Civilians = append(s.Civilians, component.Civilian{Pos: q})
		}
	}
}

// chainExplosion ignites the block around a destroyed power plant
func (sys *CombatSystem) chainExplosion(ctx *engine.Context, s *engine.State, center core.Point) {
	s.Message = "POWER PLANT EXPLODED!"
	s.Logf(event.SeverityDamage, "POWER PLANT EXPLODED!")
	ctx.Emit(event.CueExplosion, center)

	r := parameter.ChainRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := center.Offset(dx, dy)
			if s.Grid.InBounds(p) {
				s.Ignite(p, parameter.ChainFireLife)
			}
		}
	}
}

func fleeCount(size world.BuildingSize) int {
	switch size {
	case world.SizeLarge:
		return parameter.FleeLarge
	case world.SizeMedium:
		return parameter.FleeMedium
	case world.SizeSmall:
		return parameter.FleeSmall
	case world.SizeNone:
	}
	return 0
}
