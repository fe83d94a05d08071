package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire forms are JSON arrays:
//
//	Coordinate   [x, y]
//	Move         [from, to]
//	Unit         [identity_id, group, revealed, belief_bitfield]
//	Board        [[[coordinate, unit], ...], [outcast unit, ...]]
//	Round        [round_count, board, last_move | null, group_to_move, status, liveness?]
//	GroupLayout  [identity_id × 11]
//	PlayerLayout [player, [group_layout, group_layout]]
//
// The liveness element is only written for rounds played under non-standard
// rules; a round without it is played under StandardRules.

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

func decodeArray(data []byte, what string, min, max int) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, malformed("%s: %v", what, err)
	}
	if len(items) < min || len(items) > max {
		return nil, malformed("%s: expected %d to %d elements, got %d", what, min, max, len(items))
	}
	return items, nil
}

func decodeInt(data json.RawMessage, what string) (int, error) {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, malformed("%s: %v", what, err)
	}
	return n, nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.x, c.y})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return malformed("coordinate: %v", err)
	}
	if len(xy) != 2 {
		return malformed("coordinate: expected 2 elements, got %d", len(xy))
	}
	parsed, ok := ParseCoordinate(xy[0], xy[1])
	if !ok {
		return malformed("coordinate (%d,%d) is outside the board", xy[0], xy[1])
	}
	*c = parsed
	return nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Coordinate{m.From, m.To})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, "move", 2, 2)
	if err != nil {
		return err
	}
	var from, to Coordinate
	if err := from.UnmarshalJSON(items[0]); err != nil {
		return err
	}
	if err := to.UnmarshalJSON(items[1]); err != nil {
		return err
	}
	*m = NewMove(from, to)
	return nil
}

func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{u.Identity.ID(), int(u.Group), u.Revealed, u.Belief.Bitfield()})
}

func (u *Unit) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, "unit", 4, 4)
	if err != nil {
		return err
	}
	id, err := decodeInt(items[0], "unit identity")
	if err != nil {
		return err
	}
	identity, err := IdentityFromID(id)
	if err != nil {
		return err
	}
	group, err := decodeInt(items[1], "unit group")
	if err != nil {
		return err
	}
	if !Group(group).Valid() {
		return malformed("unit group %d", group)
	}
	var revealed bool
	if err := json.Unmarshal(items[2], &revealed); err != nil {
		return malformed("unit revealed: %v", err)
	}
	bits, err := decodeInt(items[3], "unit belief")
	if err != nil {
		return err
	}
	belief, err := IdentitySetFromBitfield(bits)
	if err != nil {
		return err
	}
	if identity != Unknown && !belief.Contains(identity) {
		return malformed("belief %v of a %s excludes its identity", belief, identity)
	}
	if revealed && belief.Len() != 1 {
		return malformed("revealed unit with belief %v", belief)
	}
	*u = Unit{Group: Group(group), Identity: identity, Belief: belief, Revealed: revealed}
	return nil
}

func (b *Board) MarshalJSON() ([]byte, error) {
	cells := make([][2]any, 0, len(b.cells))
	for _, c := range b.Coordinates() {
		cells = append(cells, [2]any{c, b.cells[c]})
	}
	outcasts := b.outcasts
	if outcasts == nil {
		outcasts = []*Unit{}
	}
	return json.Marshal([]any{cells, outcasts})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, "board", 2, 2)
	if err != nil {
		return err
	}
	var cells [][]json.RawMessage
	if err := json.Unmarshal(items[0], &cells); err != nil {
		return malformed("board cells: %v", err)
	}
	decoded := NewBoard()
	perGroup := make(map[Group]int)
	for _, cell := range cells {
		if len(cell) != 2 {
			return malformed("board cell: expected 2 elements, got %d", len(cell))
		}
		var c Coordinate
		if err := c.UnmarshalJSON(cell[0]); err != nil {
			return err
		}
		u := &Unit{}
		if err := u.UnmarshalJSON(cell[1]); err != nil {
			return err
		}
		if decoded.At(c) != nil {
			return malformed("cell %v appears twice", c)
		}
		decoded.cells[c] = u
		perGroup[u.Group]++
	}
	var outcasts []*Unit
	if err := json.Unmarshal(items[1], &outcasts); err != nil {
		return err
	}
	for _, u := range outcasts {
		if u == nil {
			return malformed("null outcast")
		}
		perGroup[u.Group]++
	}
	for g, n := range perGroup {
		if n > UnitsPerGroup {
			return malformed("group %d has %d units", g, n)
		}
	}
	decoded.outcasts = outcasts
	*b = *decoded
	return nil
}

func (r *Round) MarshalJSON() ([]byte, error) {
	var last any
	if r.lastMove != nil {
		last = *r.lastMove
	}
	items := []any{r.count, r.board, last, int(r.groupToMove), int(r.status)}
	if r.rules != StandardRules() {
		items = append(items, int(r.rules.Liveness))
	}
	return json.Marshal(items)
}

func (r *Round) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, "round", 3, 6)
	if err != nil {
		return err
	}
	count, err := decodeInt(items[0], "round count")
	if err != nil {
		return err
	}
	if count < 0 {
		return malformed("round count %d", count)
	}
	board := NewBoard()
	if err := board.UnmarshalJSON(items[1]); err != nil {
		return err
	}
	var lastMove *Move
	if string(items[2]) != "null" {
		lastMove = &Move{}
		if err := lastMove.UnmarshalJSON(items[2]); err != nil {
			return err
		}
	}

	rules := StandardRules()
	if len(items) > 5 {
		n, err := decodeInt(items[5], "liveness")
		if err != nil {
			return err
		}
		if rules.Liveness = Liveness(n); rules.Liveness != LivenessPresence && rules.Liveness != LivenessMobility {
			return malformed("liveness %d", n)
		}
	}
	group := Group(0)
	if len(items) > 3 {
		n, err := decodeInt(items[3], "group to move")
		if err != nil {
			return err
		}
		if group = Group(n); !group.Valid() {
			return malformed("group to move %d", n)
		}
	}
	var status Status
	if len(items) > 4 {
		n, err := decodeInt(items[4], "status")
		if err != nil {
			return err
		}
		if status = Status(n); status < Ongoing || status > WonByPlayer2 {
			return malformed("status %d", n)
		}
	} else {
		mover := group.Owner()
		if lastMove != nil {
			if u := board.At(lastMove.To); u != nil {
				mover = u.Owner()
			}
		}
		status = rules.status(board, mover)
	}

	*r = Round{
		count:       count,
		board:       board,
		groupToMove: group,
		lastMove:    lastMove,
		status:      status,
		rules:       rules,
	}
	return nil
}

func (l GroupLayout) MarshalJSON() ([]byte, error) {
	ids := make([]int, len(l))
	for i, id := range l {
		ids[i] = id.ID()
	}
	return json.Marshal(ids)
}

func (l *GroupLayout) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return malformed("layout: %v", err)
	}
	if len(ids) != UnitsPerGroup {
		return malformed("layout: expected %d identities, got %d", UnitsPerGroup, len(ids))
	}
	for i, n := range ids {
		id, err := IdentityFromID(n)
		if err != nil {
			return err
		}
		if id == Unknown {
			return malformed("layout slot %d is empty", i)
		}
		l[i] = id
	}
	return nil
}

func (p PlayerLayout) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{int(p.Player), p.Layouts})
}

func (p *PlayerLayout) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, "player layout", 2, 2)
	if err != nil {
		return err
	}
	n, err := decodeInt(items[0], "player")
	if err != nil {
		return err
	}
	player := Player(n)
	if !player.Valid() {
		return malformed("player %d", n)
	}
	var layouts []GroupLayout
	if err := json.Unmarshal(items[1], &layouts); err != nil {
		return err
	}
	if len(layouts) != 2 {
		return malformed("player layout: expected 2 group layouts, got %d", len(layouts))
	}
	*p = PlayerLayout{Player: player, Layouts: [2]GroupLayout{layouts[0], layouts[1]}}
	return nil
}

// Serialize encodes a round in its wire form.
func Serialize(r *Round) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize decodes a ground-truth round. Withheld identities are rejected;
// use DeserializeView for a round as seen by a player.
func Deserialize(payload string) (*Round, error) {
	r, err := DeserializeView(payload)
	if err != nil {
		return nil, err
	}
	for _, c := range r.board.Coordinates() {
		if r.board.At(c).Identity == Unknown {
			return nil, malformed("unit on %v has no identity", c)
		}
	}
	for _, u := range r.board.outcasts {
		if u.Identity == Unknown {
			return nil, malformed("outcast has no identity")
		}
	}
	return r, nil
}

func DeserializeView(payload string) (*Round, error) {
	r := &Round{}
	if err := json.Unmarshal([]byte(payload), r); err != nil {
		return nil, asMalformed(err)
	}
	return r, nil
}

// View returns the round as the player may see it.
func (r *Round) View(player Player) *Round {
	c := *r
	c.board = r.board.View(player)
	return &c
}

func EncodeMove(m Move) (string, error) {
	data, err := json.Marshal(m)
	return string(data), err
}

func DecodeMove(payload string) (Move, error) {
	var m Move
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return Move{}, asMalformed(err)
	}
	return m, nil
}

func EncodePlayerLayout(p PlayerLayout) (string, error) {
	data, err := json.Marshal(p)
	return string(data), err
}

func DecodePlayerLayout(payload string) (PlayerLayout, error) {
	var p PlayerLayout
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return PlayerLayout{}, asMalformed(err)
	}
	return p, nil
}

func asMalformed(err error) error {
	if errors.Is(err, ErrMalformed) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
