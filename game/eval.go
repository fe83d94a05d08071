package game

// CountUnits tallies the player's units on the board. With no identities given
// every unit counts.
func CountUnits(b *Board, player Player, ids ...Identity) int {
	filter := NewIdentitySet(ids...)
	count := 0
	for _, c := range b.Coordinates() {
		u := b.At(c)
		if u.Owner() != player {
			continue
		}
		if len(ids) == 0 || filter.Contains(u.Identity) {
			count++
		}
	}
	return count
}

// Where returns the cells holding the player's units of the given identity.
func Where(b *Board, player Player, id Identity) []Coordinate {
	var found []Coordinate
	for _, c := range b.Coordinates() {
		if u := b.At(c); u.Owner() == player && u.Identity == id {
			found = append(found, c)
		}
	}
	return found
}

// Material summarises a player's standing for reports: units on the board,
// units lost and how many of the player's units the opponent has identified.
type Material struct {
	OnBoard  int
	Lost     int
	Revealed int
}

func MaterialOf(b *Board, player Player) Material {
	var m Material
	for _, c := range b.Coordinates() {
		if u := b.At(c); u.Owner() == player {
			m.OnBoard++
			if u.Revealed {
				m.Revealed++
			}
		}
	}
	for _, u := range b.Outcasts() {
		if u.Owner() == player {
			m.Lost++
		}
	}
	return m
}
