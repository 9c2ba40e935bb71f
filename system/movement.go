package system

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
)

// MovementSystem moves civilians away from the creature and enemies toward it
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Name returns the system's name
func (sys *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's stage priority
func (sys *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (sys *MovementSystem) Update(ctx *engine.Context, s *engine.State) {
	burning := Burning(s.Fires)

	sys.moveCivilians(ctx, s)
	s.Civilians = slices.DeleteFunc(s.Civilians, func(c component.Civilian) bool {
		return burning.Has(c.Pos)
	})

	sys.moveEnemies(ctx, s, burning)
}

// moveCivilians steps each civilian one cell away from the creature onto open ground
func (sys *MovementSystem) moveCivilians(ctx *engine.Context, s *engine.State) {
	from := s.Creature.Pos
	for i := range s.Civilians {
		c := &s.Civilians[i]
		if !vmath.Chance(ctx.Rand, parameter.CivilianMoveChance) {
			continue
		}

		dx := vmath.Sign(c.Pos.X - from.X)
		dy := vmath.Sign(c.Pos.Y - from.Y)
		tryX := vmath.Chance(ctx.Rand, parameter.CivilianAxisChance)

		next := c.Pos
		switch {
		case dx != 0 && dy != 0:
			if tryX {
				next.X += dx
			} else {
				next.Y += dy
			}
		case dx != 0:
			next.X += dx
		case dy != 0:
			next.Y += dy
		}

		if s.Grid.InBounds(next) && s.Grid.TypeAt(next).Passable() {
			c.Pos = next
		}
	}
}

// moveEnemies burns units standing in fire, steps survivors and removes the dead
func (sys *MovementSystem) moveEnemies(ctx *engine.Context, s *engine.State, burning mapset.Set[core.Point]) {
	civilians := mapset.New[core.Point]()
	for _, c := range s.Civilians {
		civilians.Put(c.Pos)
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if burning.Has(e.Pos) {
			e.HP -= parameter.FireEnemyDamage
		}
		if e.HP <= 0 {
			continue
		}
		sys.stepEnemy(s, e, civilians)
	}

	before := len(s.Enemies)
	s.Enemies = slices.DeleteFunc(s.Enemies, func(e component.Enemy) bool {
		return e.HP <= 0
	})
	s.Kills += before - len(s.Enemies)
}

// stepEnemy tries the axis with the larger offset first, then the other; at most one step
func (sys *MovementSystem) stepEnemy(s *engine.State, e *component.Enemy, civilians mapset.Set[core.Point]) {
	target := s.Creature.Pos
	ox := target.X - e.Pos.X
	oy := target.Y - e.Pos.Y

	steps := [2]core.Point{
		e.Pos.Offset(vmath.Sign(ox), 0),
		e.Pos.Offset(0, vmath.Sign(oy)),
	}
	if vmath.Abs(oy) > vmath.Abs(ox) {
		steps[0], steps[1] = steps[1], steps[0]
	}

	for _, next := range steps {
		if next == e.Pos || next == target || !s.Grid.InBounds(next) {
			continue
		}
		if e.Type.CanFly() || (!civilians.Has(next) && s.Grid.TypeAt(next).Passable()) {
			e.Pos = next
			return
		}
	}
}
