package parameter

// Score awards
const (
	ScoreEat            = 10
	ScoreCrush          = 50
	ScoreCrushTank      = 75
	ScoreSmash          = 25
	ScoreMilbase        = 500
	ScorePolice         = 200
	ScoreCityHall       = 1000
	ScoreLab            = 300
	ScoreBuildingPerHP  = 50
	ScoreThrowEnemy     = 30
	ScoreThrowStructure = 20
	ScoreBreathKill     = 40
)

// Fleeing civilians ejected on destruction
const (
	FleeMilbase  = 2
	FleePolice   = 1
	FleeCityHall = 3
	FleeLarge    = 3
	FleeMedium   = 2
	FleeSmall    = 1
)
