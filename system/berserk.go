package system

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

// BerserkPlanner chooses the autonomous step while hunger has taken over
type BerserkPlanner struct{}

// Plan returns the chosen direction; ok is false when every direction is blocked
// Preference: a direction matching the sign of the target offset, then any that shortens
// the distance, then a uniform random legal one
func (BerserkPlanner) Plan(ctx *engine.Context, s *engine.State) (core.Direction, bool) {
	c := s.Creature
	canSwim := ctx.Profile(c.Variant).CanSwim

	legal := make([]core.Direction, 0, len(core.Cardinals))
	for _, d := range core.Cardinals {
		p := c.Pos.Add(d)
		if !s.Grid.InBounds(p) {
			continue
		}
		switch s.Grid.TypeAt(p) {
		case world.CellDeepWater:
			continue
		case world.CellShallowWater:
			if !canSwim {
				continue
			}
		}
		legal = append(legal, d)
	}
	if len(legal) == 0 {
		return core.Direction{}, false
	}

	if target, dist, found := NearestFood(s); found {
		sx := vmath.Sign(target.X - c.Pos.X)
		sy := vmath.Sign(target.Y - c.Pos.Y)
		for _, d := range legal {
			if (d.DX != 0 && d.DX == sx) || (d.DY != 0 && d.DY == sy) {
				return d, true
			}
		}
		for _, d := range legal {
			if vmath.Manhattan(target, c.Pos.Add(d)) < dist {
				return d, true
			}
		}
	}

	return legal[ctx.Rand.Intn(len(legal))], true
}

// NearestFood finds the closest civilian or enemy by Manhattan distance; civilians win ties
func NearestFood(s *engine.State) (core.Point, int, bool) {
	from := s.Creature.Pos
	best, bestDist, found := core.Point{}, 0, false

	consider := func(p core.Point) {
		d := vmath.Manhattan(from, p)
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	for _, c := range s.Civilians {
		consider(c.Pos)
	}
	for _, e := range s.Enemies {
		consider(e.Pos)
	}
	return best, bestDist, found
}
