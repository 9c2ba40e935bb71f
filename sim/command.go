package sim

import (
	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
)

// CommandKind tags the Command union
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdWait
	CmdRanged
	CmdThrow
	CmdNewGame
)

func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdWait:
		return "wait"
	case CmdRanged:
		return "ranged"
	case CmdThrow:
		return "throw"
	case CmdNewGame:
		return "newgame"
	}
	return "unknown"
}

// Command is a discrete player request
// Dir is set for CmdMove; Variant and Seed for CmdNewGame (seed 0 keeps the current generator)
type Command struct {
	Kind    CommandKind
	Dir     core.Direction
	Variant component.Variant
	Seed    uint64
}

func Move(d core.Direction) Command {
	return Command{Kind: CmdMove, Dir: d}
}

func Wait() Command {
	return Command{Kind: CmdWait}
}

func Ranged() Command {
	return Command{Kind: CmdRanged}
}

func Throw() Command {
	return Command{Kind: CmdThrow}
}

func NewGame(v component.Variant, seed uint64) Command {
	return Command{Kind: CmdNewGame, Variant: v, Seed: seed}
}
