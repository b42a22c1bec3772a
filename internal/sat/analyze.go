package sat

// analyze implements first-UIP conflict-driven clause learning (spec §4.E).
// Given the literals of a just-falsified clause, it walks the implication
// graph backwards from the conflict along the trail, resolving away every
// literal assigned at the current decision level except one: the first
// unique implication point. It returns the learned clause (its first
// literal is always the negation of the UIP, ready to be asserted once the
// caller backjumps) and the decision level to backjump to.
func (s *Solver) analyze(conflict []Literal) ([]Literal, int) {
	seen := s.seenVar
	seen.Clear()

	learnt := []Literal{0} // slot 0 is filled with the UIP literal at the end
	pathC := 0
	trailIdx := len(s.trail) - 1
	confl := conflict

	var p Literal

	for {
		for _, q := range confl {
			v := q.Variable()
			if seen.Contains(int(v)) {
				continue
			}
			seen.Add(int(v))
			s.order.BumpScore(v)

			lv := s.level[v]
			switch {
			case lv == s.decisionLevel():
				pathC++
			case lv > 0:
				// Literal decided at an earlier, still-relevant level: it
				// stays in the clause as-is. A level-0 literal is forced
				// unconditionally and contributes nothing worth learning.
				learnt = append(learnt, q)
			}
		}

		for !seen.Contains(int(s.trail[trailIdx].Variable())) {
			trailIdx--
		}
		p = s.trail[trailIdx]
		trailIdx--
		pathC--
		if pathC == 0 {
			break
		}
		confl = s.antecedent(p, s.reasons[p.Variable()])
	}

	learnt[0] = p.Negate()

	backjumpLevel := 0
	for _, l := range learnt[1:] {
		if lv := s.level[l.Variable()]; lv > backjumpLevel {
			backjumpLevel = lv
		}
	}
	return learnt, backjumpLevel
}
