package game

import (
	"maps"
	"slices"
)

// Board maps occupied cells to units and keeps the removed units in capture
// order. A unit is either on a cell or among the outcasts, never both.
type Board struct {
	cells    map[Coordinate]*Unit
	outcasts []*Unit
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		cells: make(map[Coordinate]*Unit),
	}
}

// Copy returns a deep copy; units are copied too.
func (b *Board) Copy() *Board {
	cells := make(map[Coordinate]*Unit, len(b.cells))
	for c, u := range b.cells {
		cells[c] = u.Copy()
	}
	outcasts := make([]*Unit, len(b.outcasts))
	for i, u := range b.outcasts {
		outcasts[i] = u.Copy()
	}
	return &Board{
		cells:    cells,
		outcasts: outcasts,
	}
}

// At returns the unit standing on c, or nil.
func (b *Board) At(c Coordinate) *Unit {
	return b.cells[c]
}

// Put places u on an empty cell.
func (b *Board) Put(c Coordinate, u *Unit) {
	if b.cells[c] != nil {
		invariant("cell %v is already occupied", c)
	}
	b.cells[c] = u
}

// Remove lifts the unit off c without recording it as an outcast.
func (b *Board) Remove(c Coordinate) *Unit {
	u := b.cells[c]
	delete(b.cells, c)
	return u
}

// Capture moves the unit on c to the outcasts.
func (b *Board) Capture(c Coordinate) {
	if u := b.Remove(c); u != nil {
		b.outcasts = append(b.outcasts, u)
	}
}

func (b *Board) banish(u *Unit) {
	b.outcasts = append(b.outcasts, u)
}

// Outcasts returns the removed units in capture order.
func (b *Board) Outcasts() []*Unit {
	return b.outcasts
}

// Coordinates returns the occupied cells sorted by (x, y).
func (b *Board) Coordinates() []Coordinate {
	coords := slices.Collect(maps.Keys(b.cells))
	slices.SortFunc(coords, compareCoordinates)
	return coords
}

// Len returns the number of units on the board.
func (b *Board) Len() int {
	return len(b.cells)
}

// GroupCoordinates returns the cells held by a group, sorted by (x, y).
func (b *Board) GroupCoordinates(group Group) []Coordinate {
	var coords []Coordinate
	for _, c := range b.Coordinates() {
		if b.cells[c].Group == group {
			coords = append(coords, c)
		}
	}
	return coords
}

func (b *Board) groupUnits(group Group) []*Unit {
	var units []*Unit
	for _, c := range b.GroupCoordinates(group) {
		units = append(units, b.cells[c])
	}
	return units
}

// Present reports whether any unit of the group is still on the board.
func (b *Board) Present(group Group) bool {
	for _, u := range b.cells {
		if u.Group == group {
			return true
		}
	}
	return false
}

// Equal compares cells and outcasts, including belief state.
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) || len(b.outcasts) != len(other.outcasts) {
		return false
	}
	for c, u := range b.cells {
		o := other.cells[c]
		if o == nil || *o != *u {
			return false
		}
	}
	for i, u := range b.outcasts {
		if *u != *other.outcasts[i] {
			return false
		}
	}
	return true
}

// View returns the board as the given player may see it: identities of
// unrevealed enemy units are withheld, belief sets are kept.
func (b *Board) View(player Player) *Board {
	v := b.Copy()
	hide := func(u *Unit) {
		if u.Owner() != player && !u.Revealed {
			u.Identity = Unknown
		}
	}
	for _, u := range v.cells {
		hide(u)
	}
	for _, u := range v.outcasts {
		hide(u)
	}
	return v
}
