package component

import "github.com/lixenwraith/rampage/core"

// Civilian is stateless beyond its location
type Civilian struct {
	Pos core.Point
}
