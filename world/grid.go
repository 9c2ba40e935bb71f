package world

import "github.com/lixenwraith/rampage/core"

// Grid is a flat arena of cells indexed by y*Width+x
// Cells are owned by the grid; entities refer to them by coordinate only
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid with every cell empty
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Clamp bounds p to the grid edges
func (g *Grid) Clamp(p core.Point) core.Point {
	return core.Point{
		X: max(0, min(g.width-1, p.X)),
		Y: max(0, min(g.height-1, p.Y)),
	}
}

// At returns the cell at p; out-of-bounds reads return an empty cell
func (g *Grid) At(p core.Point) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.cells[p.Y*g.width+p.X]
}

// TypeAt is a shorthand for At(p).Type
func (g *Grid) TypeAt(p core.Point) CellType {
	return g.At(p).Type
}

// Set replaces the cell at p; out-of-bounds writes are ignored
func (g *Grid) Set(p core.Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = c
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Each visits every cell in row-major order
func (g *Grid) Each(fn func(p core.Point, c Cell)) {
	for i, c := range g.cells {
		fn(core.Point{X: i % g.width, Y: i / g.width}, c)
	}
}

// Find returns the coordinates of every cell of type t in row-major order
func (g *Grid) Find(t CellType) []core.Point {
	var out []core.Point
	for i, c := range g.cells {
		if c.Type == t {
			out = append(out, core.Point{X: i % g.width, Y: i / g.width})
		}
	}
	return out
}

// Count returns the number of cells of type t
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, c := range g.cells {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Damage lowers the hp of an hp-bearing cell; at or below zero it becomes rubble
// Cells without hp (rubble included) are unaffected, so repeated damage converts once
// Returns the cell as it was before the hit and whether this hit destroyed it
func (g *Grid) Damage(p core.Point, amount int) (Cell, bool) {
	prev := g.At(p)
	if !prev.HasHP() || amount <= 0 {
		return prev, false
	}
	c := prev
	c.HP -= amount
	if c.HP <= 0 {
		g.Set(p, Terrain(CellRubble))
		return prev, true
	}
	g.Set(p, c)
	return prev, false
}

// Strike is the creature's attack path: cells without hp (parks) count as having 1
// Destroyed parks clear to road; everything else becomes rubble
func (g *Grid) Strike(p core.Point, amount int) (Cell, bool) {
	prev := g.At(p)
	if prev.HasHP() {
		return g.Damage(p, amount)
	}
	if !prev.Type.BreathTarget() || amount <= 0 {
		return prev, false
	}
	if prev.Type == CellPark {
		g.Set(p, Terrain(CellRoad))
	} else {
		g.Set(p, Terrain(CellRubble))
	}
	return prev, true
}
