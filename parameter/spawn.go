package parameter

// Enemy spawning
const (
	// EnemyCap bounds concurrent enemies
	EnemyCap = 15

	// PoliceSpawnInterval is the turn divisor for police station ejections
	PoliceSpawnInterval = 4

	// DefenderSpawnInterval is the turn divisor for defender waves
	DefenderSpawnInterval = 3
	// DefenderWaveTurn2 and DefenderWaveTurn3 escalate wave size to 2 and 3
	DefenderWaveTurn2 = 10
	DefenderWaveTurn3 = 25
	// DefenderBaseOffset is the orthogonal distance from the base for spawns
	DefenderBaseOffset = 2
	// EdgeSpawnMargin excludes the eastern water columns from north/south edge spawns
	EdgeSpawnMargin = 6

	// Defender type weights as cumulative thresholds
	InfantryWeight = 0.4
	TankWeight     = 0.35
)

// Civilians
const (
	// CivilianCap bounds concurrent civilians
	CivilianCap = 20
	// CivilianSpawnInterval is the turn divisor for ambient civilians
	CivilianSpawnInterval = 2
	// CivilianMoveChance is the per-turn chance a civilian moves
	CivilianMoveChance = 0.6
	// CivilianAxisChance is the chance of trying the x axis first
	CivilianAxisChance = 0.5
)

// WindShiftChance is the per-turn chance of a new wind direction
const WindShiftChance = 0.1
