package game

// Reason narrows the belief set of every unit of one complete army to the
// identities it takes in at least one assignment consistent with all belief
// sets and the army quota. The true assignment is always one of them, so the
// truth is never excluded.
func Reason(units []*Unit) {
	if len(units) == 0 {
		return
	}
	if len(units) != UnitsPerGroup {
		invariant("reasoning over %d units, an army has %d", len(units), UnitsPerGroup)
	}

	candidates := make([]IdentitySet, len(units))
	for i, u := range units {
		candidates[i] = u.Belief
	}
	possible := make([]IdentitySet, len(units))
	cover(candidates, ArmyQuota, func(assigned []Identity) bool {
		for i, id := range assigned {
			possible[i] = possible[i].With(id)
		}
		// Nothing left to learn once every candidate has been seen.
		for i := range possible {
			if possible[i] != candidates[i] {
				return true
			}
		}
		return false
	})

	for i, u := range units {
		u.Narrow(possible[i])
	}
}

// reasonGroup runs Reason for a group only while all of its units are on the
// board; once the army is incomplete the quota no longer describes it.
func reasonGroup(b *Board, group Group) {
	units := b.groupUnits(group)
	if len(units) != UnitsPerGroup {
		return
	}
	Reason(units)
}
