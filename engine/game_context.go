package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/vmath"
)

// Context carries the dependencies every system needs during one transition
// It is not safe for concurrent use; the host owns one per game
type Context struct {
	Rand     vmath.Rand
	Logger   *zap.Logger
	Profiles *data.ProfileTable

	effects []Effect
}

// NewContext wires a transition context; nil logger or profiles fall back to defaults
func NewContext(rng vmath.Rand, logger *zap.Logger, profiles *data.ProfileTable) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	if profiles == nil {
		profiles = data.BuiltinProfiles()
	}
	return &Context{Rand: rng, Logger: logger, Profiles: profiles}
}

// Profile returns the stats of a creature variant
func (c *Context) Profile(v component.Variant) *data.Profile {
	return c.Profiles.Get(v)
}

// Emit records a feedback cue
func (c *Context) Emit(cue event.Cue, pos core.Point) {
	c.effects = append(c.effects, Effect{Cue: cue, Pos: pos})
}

// Drain returns and clears the cues emitted since the last drain
func (c *Context) Drain() []Effect {
	out := c.effects
	c.effects = nil
	return out
}
