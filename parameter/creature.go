package parameter

// Hunger thresholds as fractions of max hunger
const (
	// BerserkThreshold is exceeded to enter berserk
	BerserkThreshold = 0.85
	// CalmThreshold must be undercut by an eat/crush to leave berserk
	CalmThreshold = 0.5
	// StarveThreshold is exceeded for starvation damage
	StarveThreshold = 0.75

	// HungerPerTurn is added at every turn resolution
	HungerPerTurn = 1
)

// Variant-specific values live in the data profile table; these are the rule constants
const (
	StarveDamage      = 0.5
	StarveDamageRegen = 0.25
	RegenPerTurn      = 0.5
	ArmorFactor       = 0.6
)

// StartColumn is where the creature enters on the spawn row
const StartColumn = 1
