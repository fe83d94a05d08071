package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type Status int

const (
	Ongoing Status = iota
	WonByPlayer1
	WonByPlayer2
)

func (s Status) String() string {
	switch s {
	case WonByPlayer1:
		return "WonByPlayer1"
	case WonByPlayer2:
		return "WonByPlayer2"
	default:
		return "Ongoing"
	}
}

// Winner returns the victorious player of a finished game.
func (s Status) Winner() (Player, bool) {
	switch s {
	case WonByPlayer1:
		return P1, true
	case WonByPlayer2:
		return P2, true
	default:
		return 0, false
	}
}

func wonBy(p Player) Status {
	if p == P1 {
		return WonByPlayer1
	}
	return WonByPlayer2
}

// Round is an immutable snapshot of a match. Proceed returns the next Round
// and leaves the receiver untouched, so a history of Rounds replays the game.
type Round struct {
	count       int
	board       *Board
	groupToMove Group
	lastMove    *Move
	status      Status
	rules       Rules
}

// NewGame sets out both players' layouts under the standard rules.
func NewGame(p1, p2 PlayerLayout) (*Round, error) {
	return NewGameWithRules(StandardRules(), p1, p2)
}

func NewGameWithRules(rules Rules, p1, p2 PlayerLayout) (*Round, error) {
	if p1.Player != P1 || p2.Player != P2 {
		return nil, fmt.Errorf("%w: layouts given for %v and %v", ErrInvalidLayout, p1.Player, p2.Player)
	}
	b := NewBoard()
	for _, pl := range []PlayerLayout{p1, p2} {
		if err := pl.Validate(); err != nil {
			return nil, err
		}
		for i, g := range pl.Player.Groups() {
			setOut(b, g, pl.Layouts[i])
		}
	}
	for g := Group(0); g < GroupCount; g++ {
		reasonGroup(b, g)
	}
	return &Round{
		board:       b,
		groupToMove: 0,
		status:      Ongoing,
		rules:       rules,
	}, nil
}

func (r *Round) RoundCount() int { return r.count }

// Board returns the ground-truth board. It must be treated as read-only.
func (r *Round) Board() *Board { return r.board }

func (r *Round) GroupToMove() Group { return r.groupToMove }

func (r *Round) Status() Status { return r.status }

func (r *Round) Rules() Rules { return r.rules }

// LastMove returns the move that produced this round.
func (r *Round) LastMove() (Move, bool) {
	if r.lastMove == nil {
		return Move{}, false
	}
	return *r.lastMove, true
}

// Winner returns the winning player once the game is over.
func (r *Round) Winner() (Player, bool) {
	return r.status.Winner()
}

// WithRules returns a copy of the round played under different rules.
func (r *Round) WithRules(rules Rules) *Round {
	c := *r
	c.rules = rules
	return &c
}

// ValidateMove checks the move for the group to move.
func (r *Round) ValidateMove(m Move) bool {
	return r.status == Ongoing && ValidateMove(r.board, r.groupToMove, m)
}

// LegalMoves lists every legal move of the group to move.
func (r *Round) LegalMoves() []Move {
	if r.status != Ongoing {
		return nil
	}
	return GroupMoves(r.board, r.groupToMove)
}

// Proceed plays one move and returns the next round.
//
// It panics with an InvariantViolation when the game is still ongoing but no
// other group can move. Under presence liveness this is reachable: a player
// whose remaining units are all immobile is alive yet has no move.
func (r *Round) Proceed(m Move) (*Round, error) {
	if r.status != Ongoing {
		return nil, fmt.Errorf("%w: game is over", ErrInvalidMove)
	}
	if !ValidateMove(r.board, r.groupToMove, m) {
		return nil, fmt.Errorf("%w: %v by group %d", ErrInvalidMove, m, r.groupToMove)
	}

	next := Resolve(r.board, m)
	status := r.rules.status(next, r.groupToMove.Owner())

	nextGroup := r.groupToMove
	if status == Ongoing {
		found := false
		for i := 1; i < GroupCount; i++ {
			g := r.groupToMove.Next(i)
			if HasLegalMove(next, g) {
				nextGroup = g
				found = true
				break
			}
		}
		if !found {
			invariant("no group can move after %v while the game is ongoing", m)
		}
	}

	move := m
	return &Round{
		count:       r.count + 1,
		board:       next,
		groupToMove: nextGroup,
		lastMove:    &move,
		status:      status,
		rules:       r.rules,
	}, nil
}

// status decides the game state after mover's side played.
func (rules Rules) status(b *Board, mover Player) Status {
	p1 := rules.Alive(b, P1)
	p2 := rules.Alive(b, P2)
	switch {
	case p1 && p2:
		return Ongoing
	case !p1 && !p2:
		return wonBy(mover)
	case p1:
		return WonByPlayer1
	default:
		return WonByPlayer2
	}
}

// SwapEdit exchanges two units of the same group during the layout phase.
// The swap is kept only if the group's arrangement is still a valid layout;
// otherwise the board is left exactly as it was and false is returned.
func (r *Round) SwapEdit(m Move) bool {
	if r.count != 0 || r.status != Ongoing || m.From == m.To {
		return false
	}
	from := r.board.At(m.From)
	to := r.board.At(m.To)
	if from == nil || to == nil || from.Group != to.Group {
		return false
	}

	b := r.board.Copy()
	b.cells[m.From], b.cells[m.To] = b.cells[m.To], b.cells[m.From]
	layout, ok := groupLayout(b, from.Group)
	if !ok || layout.Validate() != nil {
		return false
	}

	// Observers only know what the new slots allow.
	for slot, c := range StartingCoordinates(from.Group) {
		if u := b.At(c); !u.Revealed {
			u.Belief = allowedBySlot[slot]
		}
	}
	reasonGroup(b, from.Group)
	r.board = b
	return true
}

// Layout reconstructs the player's current arrangement, or false when one of
// the starting cells no longer holds its original group.
func (r *Round) Layout(player Player) (PlayerLayout, bool) {
	pl := PlayerLayout{Player: player}
	for i, g := range player.Groups() {
		l, ok := groupLayout(r.board, g)
		if !ok {
			return PlayerLayout{}, false
		}
		pl.Layouts[i] = l
	}
	return pl, true
}

// Hash fingerprints the observable state of the round.
func (r *Round) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(r.count))
	binary.Write(hasher, binary.LittleEndian, int64(r.groupToMove))
	binary.Write(hasher, binary.LittleEndian, int64(r.status))

	writeUnit := func(u *Unit) {
		binary.Write(hasher, binary.LittleEndian, [4]int64{
			int64(u.Group), int64(u.Identity), int64(u.Belief.Bitfield()), boolInt64(u.Revealed),
		})
	}
	for _, c := range r.board.Coordinates() {
		binary.Write(hasher, binary.LittleEndian, [2]int64{int64(c.x), int64(c.y)})
		writeUnit(r.board.At(c))
	}
	for _, u := range r.board.Outcasts() {
		writeUnit(u)
	}

	return hasher.Sum64()
}

func boolInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
