package game

import "fmt"

// Move relocates the unit on From to To, attacking whatever stands there.
type Move struct {
	From Coordinate
	To   Coordinate
}

func NewMove(from, to Coordinate) Move {
	return Move{From: from, To: to}
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}
