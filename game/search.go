package game

// coverSearch enumerates every assignment of identities to slots in which slot
// i receives a member of candidates[i] and identity t is used exactly quota[t]
// times. Identities are placed in id order; each one picks a subset of the
// still free slots. Both the belief solver and the layout universe use it.
type coverSearch struct {
	candidates []IdentitySet
	quota      Quota
	assigned   []Identity
	visit      func(assigned []Identity) bool
}

// cover runs the search. visit sees a shared slice that is only valid during
// the call and returns false to stop the enumeration.
func cover(candidates []IdentitySet, quota Quota, visit func(assigned []Identity) bool) {
	if len(candidates) != quota.Total() {
		invariant("%d slots cannot hold a quota of %d", len(candidates), quota.Total())
	}
	s := &coverSearch{
		candidates: candidates,
		quota:      quota,
		assigned:   make([]Identity, len(candidates)),
		visit:      visit,
	}
	s.place(0)
}

// place assigns the identity with index k and every later one.
func (s *coverSearch) place(k int) bool {
	if k == IdentityCount {
		return s.visit(s.assigned)
	}
	if !s.feasible(k) {
		return true
	}
	return s.choose(k, 0, s.quota[k])
}

// choose puts identity k on left more free slots, starting the scan at from.
func (s *coverSearch) choose(k, from, left int) bool {
	if left == 0 {
		return s.place(k + 1)
	}
	id := Identities[k]
	for i := from; i < len(s.assigned); i++ {
		if s.assigned[i] != Unknown || !s.candidates[i].Contains(id) {
			continue
		}
		s.assigned[i] = id
		more := s.choose(k, i+1, left-1)
		s.assigned[i] = Unknown
		if !more {
			return false
		}
	}
	return true
}

// feasible prunes when the free slots can no longer absorb identities k and up.
func (s *coverSearch) feasible(k int) bool {
	var remaining IdentitySet
	for j := k; j < IdentityCount; j++ {
		if s.quota[j] > 0 {
			remaining = remaining.With(Identities[j])
		}
	}
	var available Quota
	for i, id := range s.assigned {
		if id != Unknown {
			continue
		}
		open := s.candidates[i].Intersect(remaining)
		if open.Empty() {
			return false
		}
		for _, m := range open.Members() {
			available[m.index()]++
		}
	}
	for j := k; j < IdentityCount; j++ {
		if available[j] < s.quota[j] {
			return false
		}
	}
	return true
}
