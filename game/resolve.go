package game

// Resolve applies a validated move to a copy of the board: relocation or
// combat, Base capture, belief updates and re-reasoning of the touched groups.
// The input board is never modified.
func Resolve(board *Board, m Move) *Board {
	b := board.Copy()
	attacker := b.At(m.From)
	if attacker == nil {
		invariant("no unit on %v to move", m.From)
	}
	// Reaching a cell only the free rail travel allows gives a Scout away.
	extended := attacker.Identity == Scout && !ordinaryDestinations(board, m.From).Has(m.To)

	defender := b.At(m.To)
	b.Remove(m.From)
	touched := []Group{attacker.Group}

	if defender == nil {
		b.Put(m.To, attacker)
	} else {
		if defender.Group != attacker.Group {
			touched = append(touched, defender.Group)
		}
		outcome := Engage(attacker.Identity, defender.Identity)
		observeCombat(b, attacker, defender, outcome)

		switch outcome {
		case Won:
			b.Capture(m.To)
			b.Put(m.To, attacker)
		case Lost:
			b.banish(attacker)
		case Tied:
			b.banish(attacker)
			b.Capture(m.To)
		}

		// Losing the Base takes the whole sub-army with it.
		if defender.Identity == Base && outcome != Lost {
			for _, c := range b.GroupCoordinates(defender.Group) {
				b.Capture(c)
			}
		}
	}

	if extended {
		attacker.Reveal()
	} else {
		attacker.Narrow(mobileIdentities)
	}

	for _, g := range touched {
		reasonGroup(b, g)
	}
	return b
}

// observeCombat narrows both participants to the identities that would have
// produced the observed outcome against the other side.
func observeCombat(b *Board, attacker, defender *Unit, outcome Outcome) {
	attacker.Narrow(consistentAttackers(defender.Identity, outcome))
	defender.Narrow(consistentDefenders(attacker.Identity, outcome))

	// Scouts identify what defeats them.
	if attacker.Identity == Scout && outcome == Lost {
		defender.Reveal()
	}
	// A Tank that does not win its fight exposes itself and its rear.
	if attacker.Identity == Tank && outcome != Won {
		exposeTank(b, attacker)
	}
	if defender.Identity == Tank && outcome != Lost {
		exposeTank(b, defender)
	}
}

func exposeTank(b *Board, tank *Unit) {
	tank.Reveal()
	for _, c := range b.GroupCoordinates(tank.Group) {
		if u := b.At(c); u.Identity == Base {
			u.Reveal()
		}
	}
}
