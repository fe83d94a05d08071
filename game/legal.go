package game

import (
	"maps"
	"slices"
)

// CoordinateSet is an unordered set of cells.
type CoordinateSet map[Coordinate]struct{}

func (s CoordinateSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

func (s CoordinateSet) put(c Coordinate) {
	s[c] = struct{}{}
}

// Sorted returns the members ordered by (x, y).
func (s CoordinateSet) Sorted() []Coordinate {
	coords := slices.Collect(maps.Keys(s))
	slices.SortFunc(coords, compareCoordinates)
	return coords
}

type step int

const (
	stepMove step = iota
	stepAttack
	stepBlocked
)

type collector struct {
	board   *Board
	owner   Player
	options CoordinateSet
}

// collect records c as a destination when it is empty or holds an enemy
// outside a camp, and reports whether travel may continue past it.
func (col *collector) collect(c Coordinate) step {
	piece := col.board.At(c)
	if piece == nil {
		col.options.put(c)
		return stepMove
	}
	if IsCamp(c) || piece.Owner() == col.owner {
		return stepBlocked
	}
	col.options.put(c)
	return stepAttack
}

func (col *collector) roads(at Coordinate) {
	for _, next := range Roads.Neighbors(at) {
		col.collect(next)
	}
}

type heading struct {
	at        Coordinate
	direction Delta
}

// rails slides along the rail graph keeping direction, turning only at joints
// entered with the joint's licensing direction.
func (col *collector) rails(at Coordinate) {
	visited := make(map[heading]bool)
	var slide func(start Coordinate, direction Delta)
	slide = func(start Coordinate, direction Delta) {
		h := heading{start, direction}
		if visited[h] || !Rails.Has(start) {
			return
		}
		visited[h] = true
		if col.collect(start) != stepMove {
			return
		}
		expected, onBoard := start.Add(direction)
		for _, c := range Rails.Neighbors(start) {
			if onBoard && c == expected {
				slide(c, direction)
			}
			if j, ok := joints[c]; ok && j.from == direction {
				slide(c, j.to)
			}
		}
	}
	for _, next := range Rails.Neighbors(at) {
		slide(next, next.Sub(at))
	}
}

// flood explores the rail graph in every direction, the way a Scout travels.
func (col *collector) flood(at Coordinate) {
	visited := map[Coordinate]bool{at: true}
	queue := []Coordinate{at}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range Rails.Neighbors(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			if col.collect(next) == stepMove {
				queue = append(queue, next)
			}
		}
	}
}

func newCollector(b *Board, u *Unit) *collector {
	return &collector{
		board:   b,
		owner:   u.Owner(),
		options: make(CoordinateSet),
	}
}

// LegalDestinations returns every cell the unit on at may move to or attack.
// Bases and Mines never move.
func LegalDestinations(b *Board, at Coordinate) CoordinateSet {
	unit := b.At(at)
	if unit == nil || !unit.Identity.Mobile() {
		return CoordinateSet{}
	}
	col := newCollector(b, unit)
	col.roads(at)
	if unit.Identity == Scout {
		col.flood(at)
	} else {
		col.rails(at)
	}
	return col.options
}

// ordinaryDestinations ignores the Scout's free rail travel.
func ordinaryDestinations(b *Board, at Coordinate) CoordinateSet {
	unit := b.At(at)
	if unit == nil || !unit.Identity.Mobile() {
		return CoordinateSet{}
	}
	col := newCollector(b, unit)
	col.roads(at)
	col.rails(at)
	return col.options
}

// ValidateMove checks that the move starts on a unit of group and ends on one
// of its legal destinations.
func ValidateMove(b *Board, group Group, m Move) bool {
	unit := b.At(m.From)
	if unit == nil || unit.Group != group {
		return false
	}
	return LegalDestinations(b, m.From).Has(m.To)
}

// HasLegalMove reports whether any unit of the group can move.
func HasLegalMove(b *Board, group Group) bool {
	for _, c := range b.GroupCoordinates(group) {
		if len(LegalDestinations(b, c)) > 0 {
			return true
		}
	}
	return false
}

// GroupMoves lists every legal move of a group in a stable order.
func GroupMoves(b *Board, group Group) []Move {
	var moves []Move
	for _, from := range b.GroupCoordinates(group) {
		for _, to := range LegalDestinations(b, from).Sorted() {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}
