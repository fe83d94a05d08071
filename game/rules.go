package game

import "fmt"

// Liveness decides when a player is still in the game.
type Liveness int

const (
	// LivenessPresence keeps a player alive while any of their units is on the board.
	LivenessPresence Liveness = iota
	// LivenessMobility keeps a player alive only while one of their groups can move.
	LivenessMobility
)

func (l Liveness) String() string {
	if l == LivenessMobility {
		return "mobility"
	}
	return "presence"
}

func ParseLiveness(s string) (Liveness, error) {
	switch s {
	case "", "presence":
		return LivenessPresence, nil
	case "mobility":
		return LivenessMobility, nil
	default:
		return LivenessPresence, fmt.Errorf("unknown liveness rule %q", s)
	}
}

// Rules holds the variant switches of a match.
type Rules struct {
	Liveness Liveness
}

func StandardRules() Rules {
	return Rules{Liveness: LivenessPresence}
}

// Alive reports whether the player still takes part in the game.
func (r Rules) Alive(b *Board, player Player) bool {
	for _, g := range player.Groups() {
		switch r.Liveness {
		case LivenessMobility:
			if HasLegalMove(b, g) {
				return true
			}
		default:
			if b.Present(g) {
				return true
			}
		}
	}
	return false
}
