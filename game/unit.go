package game

import "fmt"

type Player int

const (
	P1 Player = 1
	P2 Player = 2
)

// Players lists both players in turn order.
var Players = [2]Player{P1, P2}

func (p Player) Opponent() Player {
	if p == P1 {
		return P2
	}
	return P1
}

// Groups returns the two sub-armies of the player.
func (p Player) Groups() [2]Group {
	if p == P1 {
		return [2]Group{0, 2}
	}
	return [2]Group{1, 3}
}

func (p Player) Valid() bool { return p == P1 || p == P2 }

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

// Group is one of the four sub-armies. Groups 0 and 2 belong to P1.
type Group int

const (
	GroupCount    = 4
	UnitsPerGroup = 11
)

func (g Group) Owner() Player {
	if g%2 == 0 {
		return P1
	}
	return P2
}

// Next returns the group i places later in turn order.
func (g Group) Next(i int) Group {
	return Group((int(g) + i) % GroupCount)
}

func (g Group) Valid() bool { return 0 <= g && g < GroupCount }

// Unit is one army piece. Belief is what an observer can still consider
// possible for it and always contains Identity.
type Unit struct {
	Group    Group
	Identity Identity
	Belief   IdentitySet
	Revealed bool
}

// NewUnit creates a unit nobody knows anything about yet.
func NewUnit(group Group, identity Identity) *Unit {
	return &Unit{
		Group:    group,
		Identity: identity,
		Belief:   AllIdentities(),
	}
}

func (u *Unit) Owner() Player {
	return u.Group.Owner()
}

// Narrow intersects the belief set with s. Narrowing away the true identity is
// an invariant violation; a belief left with a single member reveals the unit.
func (u *Unit) Narrow(s IdentitySet) {
	next := u.Belief.Intersect(s)
	if u.Identity != Unknown && !next.Contains(u.Identity) {
		invariant("narrowing %v of %s by %v drops its identity", u.Belief, u.Identity, s)
	}
	u.Belief = next
	if next.Len() == 1 {
		u.Revealed = true
	}
}

// Reveal exposes the unit's identity to every observer.
func (u *Unit) Reveal() {
	u.Belief = NewIdentitySet(u.Identity)
	u.Revealed = true
}

func (u *Unit) Copy() *Unit {
	c := *u
	return &c
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s/g%d%v", u.Identity, u.Group, u.Belief)
}
