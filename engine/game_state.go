package engine

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/world"
)

// Cause is the terminal reason of a finished game
type Cause uint8

const (
	CauseNone Cause = iota
	CauseDestroyed
	CauseStarved
)

func (c Cause) String() string {
	switch c {
	case CauseDestroyed:
		return "DESTROYED"
	case CauseStarved:
		return "STARVED"
	case CauseNone:
	}
	return ""
}

// State is the authoritative game state
// Transitions work on a Clone; a published state is never mutated again
type State struct {
	GameID uuid.UUID

	Grid      *world.Grid
	Creature  component.Creature
	Enemies   []component.Enemy
	Civilians []component.Civilian
	Fires     []component.Fire
	Wind      core.Direction

	Turn  int
	Score int
	Kills int
	Log   event.Log

	// Base is the defense anchor; BaseAlive drops once its cell is no longer a military base
	Base      core.Point
	BaseAlive bool

	GameOver bool
	Cause    Cause

	// Message is the latest headline; kept across transitions until replaced
	Message string
	// DamageFlash counts down feedback ticks after the creature is hurt
	DamageFlash int
}

// NewState places a fresh creature at the layout spawn point
func NewState(id uuid.UUID, layout world.Layout, profile *data.Profile, wind core.Direction) *State {
	s := &State{
		GameID: id,
		Grid:   layout.Grid,
		Creature: component.Creature{
			Pos:          layout.Spawn,
			HP:           profile.HP,
			MaxHP:        profile.HP,
			MaxHunger:    profile.MaxHunger,
			Variant:      profile.ID,
			ActionPoints: profile.Speed,
			LastFacing:   core.East,
		},
		Wind:      wind,
		Base:      layout.Base,
		BaseAlive: true,
	}
	s.Message = fmt.Sprintf("%s emerges! Wind blowing %s", profile.Name, wind.Arrow())
	return s
}

// Clone returns a deep copy safe to mutate
func (s *State) Clone() *State {
	c := *s
	c.Grid = s.Grid.Clone()
	c.Creature = s.Creature.Clone()
	c.Enemies = slices.Clone(s.Enemies)
	c.Civilians = slices.Clone(s.Civilians)
	c.Fires = slices.Clone(s.Fires)
	return &c
}

// Logf appends a log entry stamped with the current turn
func (s *State) Logf(sev event.Severity, format string, args ...any) {
	s.Log.Add(s.Turn, sev, fmt.Sprintf(format, args...))
}

// Flash raises the damage flash to at least n
func (s *State) Flash(n int) {
	s.DamageFlash = max(s.DamageFlash, n)
}

// End finishes the game with a cause; later calls keep the first cause
func (s *State) End(cause Cause) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Cause = cause
}

// EnemyAt returns the index of the first enemy at p, -1 if none
func (s *State) EnemyAt(p core.Point) int {
	return slices.IndexFunc(s.Enemies, func(e component.Enemy) bool { return e.Pos == p })
}

// CivilianAt returns the index of the first civilian at p, -1 if none
func (s *State) CivilianAt(p core.Point) int {
	return slices.IndexFunc(s.Civilians, func(c component.Civilian) bool { return c.Pos == p })
}

// FireAt returns the index of the fire at p, -1 if none
func (s *State) FireAt(p core.Point) int {
	return slices.IndexFunc(s.Fires, func(f component.Fire) bool { return f.Pos == p })
}

// Ignite starts a fire at p; an existing fire keeps the larger life
func (s *State) Ignite(p core.Point, life int) bool {
	if i := s.FireAt(p); i >= 0 {
		s.Fires[i].Life = max(s.Fires[i].Life, life)
		return false
	}
	s.Fires = append(s.Fires, component.Fire{Pos: p, Life: life})
	return true
}
