package system

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
)

// WindSystem occasionally redraws the wind direction
type WindSystem struct{}

// NewWindSystem creates a new wind system
func NewWindSystem() *WindSystem {
	return &WindSystem{}
}

// Name returns the system's name
func (sys *WindSystem) Name() string {
	return "wind"
}

// Priority returns the system's stage priority
func (sys *WindSystem) Priority() int {
	return parameter.PriorityWind
}

func (sys *WindSystem) Update(ctx *engine.Context, s *engine.State) {
	if !vmath.Chance(ctx.Rand, parameter.WindShiftChance) {
		return
	}
	s.Wind = RandomDirection(ctx.Rand)
	s.Logf(event.SeverityInfo, "Wind shifts to %s", s.Wind.Arrow())
}

// RandomDirection draws a uniform cardinal direction
func RandomDirection(rng vmath.Rand) core.Direction {
	return core.Cardinals[rng.Intn(len(core.Cardinals))]
}
