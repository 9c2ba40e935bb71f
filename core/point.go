package core

// Point is a grid coordinate, X grows east and Y grows south
type Point struct {
	X, Y int
}

// Add returns the point one step in direction d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Step returns the point n steps in direction d
func (p Point) Step(d Direction, n int) Point {
	return Point{X: p.X + d.DX*n, Y: p.Y + d.DY*n}
}

// Offset returns the point shifted by dx, dy
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a cardinal unit vector
type Direction struct {
	DX, DY int
}

var (
	East  = Direction{DX: 1, DY: 0}
	West  = Direction{DX: -1, DY: 0}
	South = Direction{DX: 0, DY: 1}
	North = Direction{DX: 0, DY: -1}
)

// Cardinals lists the four directions in scan order (E, W, S, N)
// Breath rays, berserk candidates and wind draws all iterate in this order
var Cardinals = [4]Direction{East, West, South, North}

// Arrow returns a single-rune glyph for the direction
func (d Direction) Arrow() string {
	switch d {
	case East:
		return "→"
	case West:
		return "←"
	case South:
		return "↓"
	case North:
		return "↑"
	}
	return "·"
}

// String returns the compass letter
func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case West:
		return "W"
	case South:
		return "S"
	case North:
		return "N"
	}
	return "-"
}
