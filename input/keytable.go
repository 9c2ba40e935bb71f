package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rampage/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings while a game is running
	GameRunes map[rune]Intent

	// Rune bindings on every screen
	GlobalRunes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyUp:     {Type: IntentMove, Dir: core.North},
			tcell.KeyDown:   {Type: IntentMove, Dir: core.South},
			tcell.KeyLeft:   {Type: IntentMove, Dir: core.West},
			tcell.KeyRight:  {Type: IntentMove, Dir: core.East},
		},

		GameRunes: map[rune]Intent{
			// vi motions
			'h': {Type: IntentMove, Dir: core.West},
			'j': {Type: IntentMove, Dir: core.South},
			'k': {Type: IntentMove, Dir: core.North},
			'l': {Type: IntentMove, Dir: core.East},
			// wasd
			'w': {Type: IntentMove, Dir: core.North},
			'a': {Type: IntentMove, Dir: core.West},
			's': {Type: IntentMove, Dir: core.South},
			'd': {Type: IntentMove, Dir: core.East},

			'.': {Type: IntentWait},
			' ': {Type: IntentRanged},
			't': {Type: IntentThrow},
		},

		GlobalRunes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleMute},
			'n': {Type: IntentNewGame},
		},
	}
}
