package input

import (
	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/sim"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentToggleMute // m
	IntentResize     // terminal resize event

	// Game commands
	IntentMove   // h,j,k,l,w,a,s,d,arrows
	IntentWait   // .
	IntentRanged // space
	IntentThrow  // t

	// Session
	IntentNewGame // 1-3 pick a monster, n replays the current one
)

// Intent is a parsed key press
type Intent struct {
	Type    IntentType
	Dir     core.Direction
	Variant component.Variant
}

// Command converts a game intent to an engine command; system intents report false
func (i Intent) Command(seed uint64) (sim.Command, bool) {
	switch i.Type {
	case IntentMove:
		return sim.Move(i.Dir), true
	case IntentWait:
		return sim.Wait(), true
	case IntentRanged:
		return sim.Ranged(), true
	case IntentThrow:
		return sim.Throw(), true
	case IntentNewGame:
		return sim.NewGame(i.Variant, seed), true
	case IntentNone, IntentQuit, IntentToggleMute, IntentResize:
	}
	return sim.Command{}, false
}
