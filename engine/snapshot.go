package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/world"
)

// Snapshot is the read-only view handed to renderers and other collaborators
// The grid is shared with a published state and must not be written
type Snapshot struct {
	GameID    uuid.UUID
	Grid      *world.Grid
	Creature  component.Creature
	Enemies   []component.Enemy
	Civilians []component.Civilian
	Fires     []component.Fire
	Wind      core.Direction

	Turn  int
	Score int
	Kills int
	Log   []event.Entry

	Base      core.Point
	BaseAlive bool

	GameOver    bool
	Cause       Cause
	Message     string
	DamageFlash int
}

// Snapshot copies the overlay lists so callers cannot reach back into the state
func (s *State) Snapshot() Snapshot {
	c := s.Creature.Clone()
	return Snapshot{
		GameID:      s.GameID,
		Grid:        s.Grid,
		Creature:    c,
		Enemies:     append([]component.Enemy(nil), s.Enemies...),
		Civilians:   append([]component.Civilian(nil), s.Civilians...),
		Fires:       append([]component.Fire(nil), s.Fires...),
		Wind:        s.Wind,
		Turn:        s.Turn,
		Score:       s.Score,
		Kills:       s.Kills,
		Log:         s.Log.Entries(),
		Base:        s.Base,
		BaseAlive:   s.BaseAlive,
		GameOver:    s.GameOver,
		Cause:       s.Cause,
		Message:     s.Message,
		DamageFlash: s.DamageFlash,
	}
}

// Valid reports whether the snapshot holds a game
func (s Snapshot) Valid() bool {
	return s.Grid != nil
}
