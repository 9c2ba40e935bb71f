package component

import "github.com/lixenwraith/rampage/core"

// Fire burns one cell; at most one record exists per coordinate
type Fire struct {
	Pos core.Point
	// Life is the remaining turns of burn capability
	Life int
}
