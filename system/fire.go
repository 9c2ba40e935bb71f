package system

import (
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

// FireSystem ages fires, spreads them downwind and burns the cells they stand on
type FireSystem struct{}

// NewFireSystem creates a new fire system
func NewFireSystem() *FireSystem {
	return &FireSystem{}
}

// Name returns the system's name
func (sys *FireSystem) Name() string {
	return "fire"
}

// Priority returns the system's stage priority
func (sys *FireSystem) Priority() int {
	return parameter.PriorityFire
}

// Update runs one fire step: age and drop, pick downwind ignitions, burn, then merge ignitions
// Ignitions merge after burning so a freshly lit cell takes no damage this turn
func (sys *FireSystem) Update(ctx *engine.Context, s *engine.State) {
	burning := mapset.New[core.Point]()
	var spread []core.Point

	kept := s.Fires[:0]
	for _, f := range s.Fires {
		f.Life--
		if f.Life <= 0 {
			continue
		}
		kept = append(kept, f)
		burning.Put(f.Pos)

		if vmath.Chance(ctx.Rand, parameter.FireSpreadChance) {
			t := f.Pos.Add(s.Wind)
			if s.Grid.InBounds(t) && s.Grid.TypeAt(t).Flammable() {
				spread = append(spread, t)
			}
		}
	}
	s.Fires = kept

	for _, f := range s.Fires {
		// Power plants only fall to direct hits, which set off the chain explosion
		if s.Grid.TypeAt(f.Pos) == world.CellPowerPlant {
			continue
		}
		prev, destroyed := s.Grid.Damage(f.Pos, parameter.FireCellDamage)
		if destroyed && prev.Type == world.CellBuilding {
			s.Logf(event.SeverityInfo, "Building burned down!")
			ctx.Emit(event.CueDestroy, f.Pos)
		}
	}

	for _, p := range spread {
		if burning.Has(p) {
			continue
		}
		burning.Put(p)
		s.Fires = append(s.Fires, component.Fire{Pos: p, Life: parameter.FireLife})
		ctx.Logger.Debug("fire spread", zap.Int("x", p.X), zap.Int("y", p.Y))
	}
}

// Burning indexes fire coordinates for occupancy checks
func Burning(fires []component.Fire) mapset.Set[core.Point] {
	set := mapset.New[core.Point]()
	for _, f := range fires {
		set.Put(f.Pos)
	}
	return set
}
