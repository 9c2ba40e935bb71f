package system

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

const arenaSize = 20

var arenaCenter = core.Point{X: 10, Y: 10}

// newArena builds an all-road 20x20 city with the creature at the center
// The base anchor points at an empty corner so defenders use edge spawns unless a test places one
func newArena(t *testing.T, v component.Variant, rng vmath.Rand) (*engine.Context, *engine.State) {
	t.Helper()
	g := world.NewGrid(arenaSize, arenaSize)
	g.Each(func(p core.Point, _ world.Cell) {
		g.Set(p, world.Terrain(world.CellRoad))
	})

	profiles := data.BuiltinProfiles()
	profile := profiles.Get(v)
	require.NotNil(t, profile)

	layout := world.Layout{Grid: g, Spawn: arenaCenter, Base: core.Point{X: 0, Y: 0}}
	s := engine.NewState(uuid.Nil, layout, profile, core.East)
	return engine.NewContext(rng, nil, profiles), s
}

func cues(effects []engine.Effect) []string {
	out := make([]string, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Cue.String())
	}
	return out
}

func lastLog(s *engine.State) string {
	entries := s.Log.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].Message
}
