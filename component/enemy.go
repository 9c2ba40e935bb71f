package component

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/parameter"
)

// EnemyType is the defender kind
type EnemyType uint8

const (
	EnemyPolice EnemyType = iota
	EnemyInfantry
	EnemyTank
	EnemyHeli
	EnemyTypeCount
)

// EnemyTypes lists every kind in breakdown order
var EnemyTypes = [EnemyTypeCount]EnemyType{EnemyPolice, EnemyInfantry, EnemyTank, EnemyHeli}

func (t EnemyType) String() string {
	switch t {
	case EnemyPolice:
		return "police"
	case EnemyInfantry:
		return "infantry"
	case EnemyTank:
		return "tank"
	case EnemyHeli:
		return "heli"
	}
	return "unknown"
}

// ContactDamage is the base end-of-turn damage when adjacent to the creature
func (t EnemyType) ContactDamage() float64 {
	switch t {
	case EnemyPolice:
		return parameter.PoliceContactDamage
	case EnemyInfantry:
		return parameter.InfantryContactDamage
	case EnemyTank:
		return parameter.TankContactDamage
	case EnemyHeli:
		return parameter.HeliContactDamage
	}
	return 0
}

// BaseHP is the hit points a freshly spawned unit has
func (t EnemyType) BaseHP() int {
	switch t {
	case EnemyPolice:
		return parameter.PoliceHP
	case EnemyInfantry:
		return parameter.InfantryHP
	case EnemyTank:
		return parameter.TankHP
	case EnemyHeli:
		return parameter.HeliHP
	}
	return 1
}

// CanFly reports whether terrain blocking is ignored
func (t EnemyType) CanFly() bool {
	switch t {
	case EnemyHeli:
		return true
	case EnemyPolice, EnemyInfantry, EnemyTank:
		return false
	}
	return false
}

// CrushScore is awarded for crushing a unit of this kind
func (t EnemyType) CrushScore() int {
	switch t {
	case EnemyTank:
		return parameter.ScoreCrushTank
	case EnemyPolice, EnemyInfantry, EnemyHeli:
		return parameter.ScoreCrush
	}
	return parameter.ScoreCrush
}

// Enemy is a hostile unit
type Enemy struct {
	Pos  core.Point
	Type EnemyType
	// HP is removed from play at or below zero
	HP int
}

// NewEnemy creates a unit at full health
func NewEnemy(t EnemyType, pos core.Point) Enemy {
	return Enemy{Pos: pos, Type: t, HP: t.BaseHP()}
}
