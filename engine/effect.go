package engine

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/event"
)

// Effect is a feedback cue produced by a transition, located where it happened
type Effect struct {
	Cue event.Cue
	Pos core.Point
}
