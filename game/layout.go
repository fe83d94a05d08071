package game

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
)

var (
	frontRow  = NewIdentitySet(Artillery, Scout, Infantry, Armored, Tank)
	secondRow = frontRow.With(Bomb)
	thirdRow  = secondRow.With(Mine)
	backRow   = AllIdentities()
)

// allowedBySlot is the identity set each slot may hold, front row first.
var allowedBySlot = [UnitsPerGroup]IdentitySet{
	frontRow, frontRow, frontRow,
	secondRow, secondRow,
	thirdRow, thirdRow, thirdRow,
	backRow, backRow, backRow,
}

// AllowedAt returns the identities slot may hold.
func AllowedAt(slot int) IdentitySet {
	return allowedBySlot[slot]
}

// GroupLayout is the identity placed on each slot of a group, in slot order.
type GroupLayout [UnitsPerGroup]Identity

// Validate checks every slot against its allowed set and the multiset of
// identities against the army quota.
func (l GroupLayout) Validate() error {
	var counts Quota
	for slot, id := range l {
		if !allowedBySlot[slot].Contains(id) {
			return fmt.Errorf("%w: %s is not allowed on slot %d", ErrInvalidLayout, id, slot)
		}
		counts[id.index()]++
	}
	if counts != ArmyQuota {
		return fmt.Errorf("%w: composition %v does not match the army quota", ErrInvalidLayout, counts)
	}
	return nil
}

// PlayerLayout holds both group layouts of one player, in Player.Groups order.
type PlayerLayout struct {
	Player  Player
	Layouts [2]GroupLayout
}

func (p PlayerLayout) Validate() error {
	if !p.Player.Valid() {
		return fmt.Errorf("%w: unknown player %d", ErrInvalidLayout, p.Player)
	}
	for i, l := range p.Layouts {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("group %d: %w", p.Player.Groups()[i], err)
		}
	}
	return nil
}

// allLayouts is built once, on first use, and read-only afterwards.
var allLayouts = sync.OnceValue(func() []GroupLayout {
	candidates := allowedBySlot[:]
	var layouts []GroupLayout
	cover(candidates, ArmyQuota, func(assigned []Identity) bool {
		var l GroupLayout
		copy(l[:], assigned)
		layouts = append(layouts, l)
		return true
	})
	return layouts
})

// AllLayouts returns the universe of valid group layouts. The slice is shared
// and must not be modified.
func AllLayouts() []GroupLayout {
	return allLayouts()
}

// RandomGroupLayout draws uniformly from the layout universe.
func RandomGroupLayout(rng *rand.Rand) GroupLayout {
	layouts := AllLayouts()
	return layouts[rng.Intn(len(layouts))]
}

func RandomPlayerLayout(player Player, rng *rand.Rand) PlayerLayout {
	return PlayerLayout{
		Player:  player,
		Layouts: [2]GroupLayout{RandomGroupLayout(rng), RandomGroupLayout(rng)},
	}
}

// setOut places a group's units on its starting cells; each unit starts out
// believed to be anything its slot allows.
func setOut(b *Board, group Group, layout GroupLayout) {
	for slot, c := range StartingCoordinates(group) {
		u := NewUnit(group, layout[slot])
		u.Narrow(allowedBySlot[slot])
		b.Put(c, u)
	}
}

// groupLayout reads the arrangement of a group off its starting cells.
func groupLayout(b *Board, group Group) (GroupLayout, bool) {
	var l GroupLayout
	for slot, c := range StartingCoordinates(group) {
		u := b.At(c)
		if u == nil || u.Group != group {
			return l, false
		}
		l[slot] = u.Identity
	}
	return l, true
}
