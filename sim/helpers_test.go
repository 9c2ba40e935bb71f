package sim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

var center = core.Point{X: 10, Y: 10}

// newTestEngine returns an engine over a 20x20 all-road city with the creature at the center
func newTestEngine(t *testing.T, v component.Variant, rng vmath.Rand) (*Engine, *engine.State) {
	t.Helper()
	g := world.NewGrid(20, 20)
	g.Each(func(p core.Point, _ world.Cell) {
		g.Set(p, world.Terrain(world.CellRoad))
	})

	profiles := data.BuiltinProfiles()
	profile := profiles.Get(v)
	require.NotNil(t, profile)

	layout := world.Layout{Grid: g, Spawn: center, Base: core.Point{}}
	s := engine.NewState(uuid.Nil, layout, profile, core.East)
	return NewEngine(engine.NewContext(rng, nil, profiles)), s
}

func hasCue(effects []engine.Effect, cue event.Cue) bool {
	for _, e := range effects {
		if e.Cue == cue {
			return true
		}
	}
	return false
}
