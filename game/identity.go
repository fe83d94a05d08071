package game

import (
	"fmt"
	"strings"
)

// Identity is the hidden kind of a unit. Ids 1..8 are the wire ids.
type Identity uint8

const (
	Unknown Identity = iota // withheld from an observer
	Base
	Bomb
	Artillery
	Scout
	Infantry
	Armored
	Tank
	Mine
)

const IdentityCount = 8

// Identities lists every real identity in id order.
var Identities = [IdentityCount]Identity{Base, Bomb, Artillery, Scout, Infantry, Armored, Tank, Mine}

var identityNames = [...]string{"Unknown", "Base", "Bomb", "Artillery", "Scout", "Infantry", "Armored", "Tank", "Mine"}

func (i Identity) String() string {
	if int(i) < len(identityNames) {
		return identityNames[i]
	}
	return fmt.Sprintf("Identity(%d)", i)
}

// ID returns the wire id of the identity.
func (i Identity) ID() int { return int(i) }

// Mobile reports whether units of this identity can ever move.
func (i Identity) Mobile() bool {
	return i != Base && i != Mine
}

func (i Identity) index() int { return int(i) - 1 }

// IdentityFromID parses a wire id. Zero yields Unknown.
func IdentityFromID(id int) (Identity, error) {
	if id < 0 || id > IdentityCount {
		return Unknown, fmt.Errorf("%w: identity id %d", ErrMalformed, id)
	}
	return Identity(id), nil
}

// IdentitySet is a set of real identities.
type IdentitySet struct {
	bits uint8
}

func NewIdentitySet(ids ...Identity) IdentitySet {
	var s IdentitySet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// AllIdentities is the set an observer starts from.
func AllIdentities() IdentitySet {
	return NewIdentitySet(Identities[:]...)
}

// mobileIdentities is what a unit proves it can be by moving at all.
var mobileIdentities = AllIdentities().Without(Base).Without(Mine)

func (s IdentitySet) Contains(id Identity) bool {
	if id == Unknown || id > Mine {
		return false
	}
	return s.bits&(1<<id.index()) != 0
}

func (s IdentitySet) With(id Identity) IdentitySet {
	if id == Unknown || id > Mine {
		return s
	}
	return IdentitySet{bits: s.bits | 1<<id.index()}
}

func (s IdentitySet) Without(id Identity) IdentitySet {
	if id == Unknown || id > Mine {
		return s
	}
	return IdentitySet{bits: s.bits &^ (1 << id.index())}
}

func (s IdentitySet) Intersect(other IdentitySet) IdentitySet {
	return IdentitySet{bits: s.bits & other.bits}
}

func (s IdentitySet) Union(other IdentitySet) IdentitySet {
	return IdentitySet{bits: s.bits | other.bits}
}

func (s IdentitySet) Empty() bool { return s.bits == 0 }

func (s IdentitySet) Len() int {
	n := 0
	for _, id := range Identities {
		if s.Contains(id) {
			n++
		}
	}
	return n
}

// Single returns the only member of a singleton set.
func (s IdentitySet) Single() (Identity, bool) {
	if s.Len() != 1 {
		return Unknown, false
	}
	return s.Members()[0], true
}

// Members returns the identities of the set in id order.
func (s IdentitySet) Members() []Identity {
	members := make([]Identity, 0, IdentityCount)
	for _, id := range Identities {
		if s.Contains(id) {
			members = append(members, id)
		}
	}
	return members
}

// Bitfield is the wire form: bit id-1 is set for every member.
func (s IdentitySet) Bitfield() int { return int(s.bits) }

func IdentitySetFromBitfield(bits int) (IdentitySet, error) {
	if bits < 0 || bits >= 1<<IdentityCount {
		return IdentitySet{}, fmt.Errorf("%w: belief bitfield %d", ErrMalformed, bits)
	}
	return IdentitySet{bits: uint8(bits)}, nil
}

func (s IdentitySet) String() string {
	names := make([]string, 0, IdentityCount)
	for _, id := range s.Members() {
		names = append(names, id.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Quota holds a count per identity, indexed by id-1.
type Quota [IdentityCount]int

// ArmyQuota is the composition of every group.
var ArmyQuota = Quota{1, 1, 1, 1, 3, 1, 1, 2}

func (q Quota) Of(id Identity) int {
	return q[id.index()]
}

func (q Quota) Total() int {
	total := 0
	for _, n := range q {
		total += n
	}
	return total
}
