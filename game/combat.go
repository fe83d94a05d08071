package game

// Outcome is the result of an engagement from the attacker's side.
type Outcome int

const (
	Impossible Outcome = iota
	Won
	Lost
	Tied
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case Tied:
		return "TIED"
	default:
		return "IMPOSSIBLE"
	}
}

const (
	x_ = Impossible
	w_ = Won
	l_ = Lost
	t_ = Tied
)

// outcomes[attacker-1][defender-1]. Base and Mine never attack.
var outcomes = [IdentityCount][IdentityCount]Outcome{
	//        Base Bomb Art  Scout Inf Armor Tank Mine
	Base - 1:      {x_, x_, x_, x_, x_, x_, x_, x_},
	Bomb - 1:      {t_, t_, t_, t_, t_, t_, t_, t_},
	Artillery - 1: {w_, t_, w_, w_, w_, w_, w_, l_},
	Scout - 1:     {w_, t_, w_, t_, l_, l_, l_, l_},
	Infantry - 1:  {w_, t_, w_, w_, t_, l_, l_, w_},
	Armored - 1:   {w_, t_, w_, w_, w_, t_, l_, l_},
	Tank - 1:      {w_, t_, w_, w_, w_, w_, t_, l_},
	Mine - 1:      {x_, x_, x_, x_, x_, x_, x_, x_},
}

// lookup returns the table entry, Impossible included.
func lookup(attacker, defender Identity) Outcome {
	if attacker == Unknown || attacker > Mine || defender == Unknown || defender > Mine {
		return Impossible
	}
	return outcomes[attacker.index()][defender.index()]
}

// Engage resolves an attack between two known identities. An attacker that
// cannot move is an invariant violation.
func Engage(attacker, defender Identity) Outcome {
	o := lookup(attacker, defender)
	if o == Impossible {
		invariant("%s cannot attack %s", attacker, defender)
	}
	return o
}

// consistentAttackers is every identity that would have produced outcome
// when attacking defender.
func consistentAttackers(defender Identity, outcome Outcome) IdentitySet {
	var s IdentitySet
	for _, id := range Identities {
		if lookup(id, defender) == outcome {
			s = s.With(id)
		}
	}
	return s
}

// consistentDefenders is every identity that would have produced outcome
// when attacked by attacker.
func consistentDefenders(attacker Identity, outcome Outcome) IdentitySet {
	var s IdentitySet
	for _, id := range Identities {
		if lookup(attacker, id) == outcome {
			s = s.With(id)
		}
	}
	return s
}
