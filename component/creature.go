package component

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/vmath"
)

// Variant identifies one of the built-in creature profiles
type Variant string

const (
	VariantLizard Variant = "lizard"
	VariantApe    Variant = "ape"
	VariantBlob   Variant = "blob"
)

// Variants lists the built-in profiles in menu order
var Variants = [...]Variant{VariantLizard, VariantApe, VariantBlob}

// Valid reports whether v names a built-in profile
func (v Variant) Valid() bool {
	switch v {
	case VariantLizard, VariantApe, VariantBlob:
		return true
	}
	return false
}

// Payload is a captured enemy carried for throwing
type Payload struct {
	Type EnemyType
}

// Creature is the player-controlled monster
type Creature struct {
	Pos core.Point

	HP    float64
	MaxHP float64

	// Hunger is clamped to [0, MaxHunger]
	Hunger    int
	MaxHunger int

	Variant Variant

	// ActionPoints is refilled to the profile speed at turn start
	ActionPoints int

	// Carrying is non-nil while a grabbed enemy is held
	Carrying *Payload

	// LastFacing is the last accepted move direction, used for throws
	LastFacing core.Direction

	Berserk bool
}

// Heal adds hp up to MaxHP
func (c *Creature) Heal(amount float64) {
	c.HP = min(c.MaxHP, c.HP+amount)
}

// Hurt removes hp, never below zero
func (c *Creature) Hurt(amount float64) {
	c.HP = max(0, c.HP-amount)
}

// Feed lowers hunger, never below zero
func (c *Creature) Feed(relief int) {
	c.Hunger = max(0, c.Hunger-relief)
}

// Starve raises hunger, never above MaxHunger
func (c *Creature) Starve(amount int) {
	c.Hunger = vmath.Clamp(c.Hunger+amount, 0, c.MaxHunger)
}

// HungerAbove reports hunger > fraction*MaxHunger
func (c *Creature) HungerAbove(fraction float64) bool {
	return float64(c.Hunger) > float64(c.MaxHunger)*fraction
}

// HungerBelow reports hunger < fraction*MaxHunger
func (c *Creature) HungerBelow(fraction float64) bool {
	return float64(c.Hunger) < float64(c.MaxHunger)*fraction
}

// Clone returns a copy that does not share the payload pointer
func (c Creature) Clone() Creature {
	if c.Carrying != nil {
		p := *c.Carrying
		c.Carrying = &p
	}
	return c
}
