package parameter

// Contact damage per adjacent enemy at end of turn
const (
	PoliceContactDamage   = 0.25
	InfantryContactDamage = 0.5
	TankContactDamage     = 1.5
	HeliContactDamage     = 0.75

	// ContactRange is the Chebyshev radius for contact damage
	ContactRange = 1
)

// Enemy hit points
const (
	PoliceHP   = 1
	InfantryHP = 1
	TankHP     = 2
	HeliHP     = 1
)

// Melee
const (
	// EatHungerRelief and EatHeal apply per civilian eaten
	EatHungerRelief = 4
	EatHeal         = 0.5

	// CrushHungerRelief and CrushHeal apply per enemy crushed
	CrushHungerRelief = 3
	CrushHeal         = 1.0

	// SnackChance is the chance a destroyed building yields a snack
	SnackChance       = 0.4
	SnackHungerRelief = 2
	SnackHeal         = 0.5

	// LabHeal is granted on destroying the lab
	LabHeal = 5.0

	// FleeChance gates each additional fleeing civilian on destruction
	FleeChance = 0.7

	// FireStepDamage is taken when the creature stands in flames after acting
	FireStepDamage = 0.5
)

// Throw
const (
	ThrowRange  = 5
	ThrowDamage = 2
)

// Ranged breath
const (
	BreathRange  = 3
	BreathDamage = 2

	// ChainRadius is the half-width of the power plant explosion block (5x5)
	ChainRadius = 2
)

// Fire
const (
	// FireLife is the life of breath, trail and spread fires
	FireLife = 3
	// ChainFireLife is the life of power plant explosion fires
	ChainFireLife = 4
	// FireSpreadChance is the per-fire chance to attempt downwind spread
	FireSpreadChance = 0.4
	// FireCellDamage is dealt to the burning cell each turn
	FireCellDamage = 1
	// FireEnemyDamage is dealt to enemies standing in flames at move time
	FireEnemyDamage = 1
)

// Damage flash durations (host fade ticks)
const (
	FlashBurn       = 2
	FlashStarve     = 3
	FlashContact    = 4
	FlashPowerPlant = 10
)
