package event

// Cue is a feedback-worthy happening emitted alongside a state transition
// Hosts map cues to sound and visual effects; the simulation never reads them back
type Cue uint8

const (
	CueBlocked Cue = iota
	CueStep
	CueEat
	CueCrush
	CueGrab
	CueThrow
	CueSmash
	CueDestroy
	CueBreath
	CueExplosion
	CueBurn
	CueHit
	CueStarve
	CueBerserk
	CueCalm
	CueTurn
	CueGameOver
	CueCount
)

func (c Cue) String() string {
	switch c {
	case CueBlocked:
		return "blocked"
	case CueStep:
		return "step"
	case CueEat:
		return "eat"
	case CueCrush:
		return "crush"
	case CueGrab:
		return "grab"
	case CueThrow:
		return "throw"
	case CueSmash:
		return "smash"
	case CueDestroy:
		return "destroy"
	case CueBreath:
		return "breath"
	case CueExplosion:
		return "explosion"
	case CueBurn:
		return "burn"
	case CueHit:
		return "hit"
	case CueStarve:
		return "starve"
	case CueBerserk:
		return "berserk"
	case CueCalm:
		return "calm"
	case CueTurn:
		return "turn"
	case CueGameOver:
		return "gameover"
	case CueCount:
	}
	return "unknown"
}
