package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/engine"
)

// Machine parses terminal events into intents against the current snapshot
type Machine struct {
	keyTable *KeyTable
	variants []component.Variant
}

// NewMachine creates a machine; variants are selected by digit keys in order
func NewMachine(variants []component.Variant) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		variants: variants,
	}
}

// Process interprets one event
// Game keys are dropped on the menu and after game over; n restarts with the current creature
func (m *Machine) Process(ev tcell.Event, snap engine.Snapshot) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, snap)
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey, snap engine.Snapshot) Intent {
	if ev.Key() != tcell.KeyRune {
		intent, ok := m.keyTable.SpecialKeys[ev.Key()]
		if !ok || (intent.Type == IntentMove && !playing(snap)) {
			return Intent{}
		}
		return intent
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		idx := int(r - '1')
		if idx < len(m.variants) && !playing(snap) {
			return Intent{Type: IntentNewGame, Variant: m.variants[idx]}
		}
		return Intent{}
	}

	if intent, ok := m.keyTable.GlobalRunes[r]; ok {
		if intent.Type == IntentNewGame {
			if !snap.Valid() || !snap.GameOver {
				return Intent{}
			}
			intent.Variant = snap.Creature.Variant
		}
		return intent
	}

	if intent, ok := m.keyTable.GameRunes[r]; ok && playing(snap) {
		return intent
	}
	return Intent{}
}

func playing(snap engine.Snapshot) bool {
	return snap.Valid() && !snap.GameOver
}
