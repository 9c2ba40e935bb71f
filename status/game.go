package status

import "sync/atomic"

// Metric keys written by the game host
const (
	KeyGameID    = "game.id"
	KeyVariant   = "game.variant"
	KeyCause     = "game.cause"
	KeyTurn      = "game.turn"
	KeyScore     = "game.score"
	KeyKills     = "game.kills"
	KeyHunger    = "creature.hunger"
	KeyHP        = "creature.hp"
	KeyBerserk   = "creature.berserk"
	KeyGameOver  = "game.over"
	KeyCommands  = "host.commands"
	KeyAutoSteps = "host.autosteps"
	KeyGames     = "host.games"
)

// GameMetrics caches the registry pointers the host updates after each transition
type GameMetrics struct {
	GameID  *AtomicString
	Variant *AtomicString
	Cause   *AtomicString

	Turn   *atomic.Int64
	Score  *atomic.Int64
	Kills  *atomic.Int64
	Hunger *atomic.Int64
	HP     *AtomicFloat

	Berserk  *atomic.Bool
	GameOver *atomic.Bool

	Commands  *atomic.Int64
	AutoSteps *atomic.Int64
	Games     *atomic.Int64
}

// NewGameMetrics registers every game metric in r
func NewGameMetrics(r *Registry) *GameMetrics {
	return &GameMetrics{
		GameID:    r.Strings.Get(KeyGameID),
		Variant:   r.Strings.Get(KeyVariant),
		Cause:     r.Strings.Get(KeyCause),
		Turn:      r.Ints.Get(KeyTurn),
		Score:     r.Ints.Get(KeyScore),
		Kills:     r.Ints.Get(KeyKills),
		Hunger:    r.Ints.Get(KeyHunger),
		HP:        r.Floats.Get(KeyHP),
		Berserk:   r.Bools.Get(KeyBerserk),
		GameOver:  r.Bools.Get(KeyGameOver),
		Commands:  r.Ints.Get(KeyCommands),
		AutoSteps: r.Ints.Get(KeyAutoSteps),
		Games:     r.Ints.Get(KeyGames),
	}
}
