package game

import "fmt"

const (
	GridCount  = 11
	GridCenter = 5
)

// Coordinate is a cell of the diamond-shaped board. The zero value is not a
// valid cell; coordinates are only produced by NewCoordinate and friends.
type Coordinate struct {
	x, y int
}

// Delta is the difference between two coordinates.
type Delta struct {
	DX, DY int
}

// IsValid reports whether (x, y) lies inside the board region.
func IsValid(x, y int) bool {
	return 0 <= x && x < GridCount && 0 <= y && y < GridCount &&
		((4 <= x && x < 7) || (4 <= y && y < 7))
}

// NewCoordinate panics when (x, y) is outside the board. Use ParseCoordinate
// for untrusted input.
func NewCoordinate(x, y int) Coordinate {
	c, ok := ParseCoordinate(x, y)
	if !ok {
		invariant("coordinate (%d,%d) is outside the board", x, y)
	}
	return c
}

func ParseCoordinate(x, y int) (Coordinate, bool) {
	if !IsValid(x, y) {
		return Coordinate{}, false
	}
	return Coordinate{x: x, y: y}, true
}

func (c Coordinate) X() int { return c.x }
func (c Coordinate) Y() int { return c.y }

// Add returns the neighbouring coordinate in direction d, if it is on the board.
func (c Coordinate) Add(d Delta) (Coordinate, bool) {
	return ParseCoordinate(c.x+d.DX, c.y+d.DY)
}

// Sub returns the delta leading from other to c.
func (c Coordinate) Sub(other Coordinate) Delta {
	return Delta{DX: c.x - other.x, DY: c.y - other.y}
}

// RotateCounterClockwise turns the coordinate a quarter around the board centre.
func (c Coordinate) RotateCounterClockwise() Coordinate {
	return NewCoordinate(c.y, -c.x+GridCenter*2)
}

func (c Coordinate) less(other Coordinate) bool {
	if c.x != other.x {
		return c.x < other.x
	}
	return c.y < other.y
}

func compareCoordinates(a, b Coordinate) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}
