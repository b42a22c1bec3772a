package sat

// reasonKind distinguishes why a literal was assigned, which in turn decides
// how conflict analysis resolves away that literal's variable (spec §4.E).
type reasonKind uint8

const (
	// reasonDecision marks a literal chosen by the decision heuristic rather
	// than forced by propagation. Decisions terminate resolution: analyze
	// never resolves through one.
	reasonDecision reasonKind = iota
	// reasonUnit marks a literal that was a unit clause at the root level;
	// it has no antecedent literals (the empty set) since a root unit
	// clause has no other literal to resolve against.
	reasonUnit
	// reasonBinary marks a literal forced by a binary clause; other is the
	// clause's one other literal, which was False at assignment time.
	reasonBinary
	// reasonLong marks a literal forced by a watched clause of length >= 3;
	// clause identifies it. The literal itself is always clause.literals[0].
	reasonLong
)

// reason records the antecedent of an assigned literal: what forced it, so
// that conflict analysis can reconstruct the implication graph edge leading
// into it (spec §3, §4.E).
type reason struct {
	kind   reasonKind
	other  Literal
	clause ClauseID
}

// antecedent returns the literals that, together with l itself, formed the
// clause that forced l (l excluded). For a decision or root unit this is
// empty: there is nothing to resolve through.
func (s *Solver) antecedent(l Literal, r reason) []Literal {
	switch r.kind {
	case reasonBinary:
		return []Literal{r.other}
	case reasonLong:
		lits := s.db.long[r.clause].literals
		return lits[1:]
	default:
		return nil
	}
}

// watcher is one entry of a literal's watch list: a long clause for which
// this literal is one of the two watched positions, plus a cached blocker
// literal (the clause's other watched literal) that lets propagation skip
// touching the clause at all when the blocker is already satisfied.
type watcher struct {
	clause  ClauseID
	blocker Literal
}

// watch registers clause id on key's watch list with the given blocker. key
// is always the negation of one of the clause's two watched literals: the
// watcher fires when key is assigned True, i.e. when the watched literal
// becomes False.
func (s *Solver) watch(id ClauseID, key Literal, blocker Literal) {
	s.watchers[key.Index()] = append(s.watchers[key.Index()], watcher{clause: id, blocker: blocker})
}

// litValue returns the current value of a literal given the underlying
// variable's assignment: True if the literal's polarity matches the
// variable's value, False if it's the opposite, Unknown if unassigned.
func (s *Solver) litValue(l Literal) LBool {
	v := s.assigns[l.Variable()]
	if v == Unknown {
		return Unknown
	}
	if l.IsPositive() {
		return v
	}
	return v.Negate()
}

// VarValue returns the current value of v's positive literal.
func (s *Solver) VarValue(v Variable) LBool {
	return s.assigns[v]
}

// decisionLevel returns the number of decisions currently on the trail.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// enqueue records l as assigned with antecedent r, appending it to the
// trail. It returns false if l's variable was already assigned to the
// opposite value (a conflict), true otherwise — including when l was
// already assigned to the same value, which is a no-op.
func (s *Solver) enqueue(l Literal, r reason) bool {
	cur := s.litValue(l)
	if cur != Unknown {
		return cur == True
	}
	v := l.Variable()
	s.assigns[v] = Lift(l.IsPositive())
	s.level[v] = s.decisionLevel()
	s.reasons[v] = r
	s.trail = append(s.trail, l)
	return true
}

// decide pushes a new decision level and enqueues l as a decision literal.
func (s *Solver) decide(l Literal) {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(l, reason{kind: reasonDecision})
	s.TotalDecisions++
}

// backjumpTo undoes every assignment made at a decision level deeper than
// level, returning undone variables to the heuristic's candidate set with
// their last value preserved for phase saving. It is a no-op if the solver
// is already at level or shallower.
func (s *Solver) backjumpTo(level int) {
	if level >= s.decisionLevel() {
		return
	}
	bound := s.trailLim[level]
	for i := len(s.trail) - 1; i >= bound; i-- {
		l := s.trail[i]
		v := l.Variable()
		val := s.assigns[v]
		s.assigns[v] = Unknown
		s.order.Reinsert(v, val)
	}
	s.trail = s.trail[:bound]
	s.trailLim = s.trailLim[:level]
	s.qHead = len(s.trail)
}

// Propagate runs unit propagation (BCP) to a fixed point, processing binary
// clauses via adjacency lookup and long clauses via watch-list rescans.
// Every literal enqueued (by a decision, a root unit, or a learned clause)
// is processed in trail order starting from the solver's saved queue head,
// so repeated calls only examine literals newly pushed since the last call.
// It returns the literals of a falsified clause if propagation reaches a
// conflict, or nil if it reaches a fixed point with no conflict.
func (s *Solver) Propagate() []Literal {
	for s.qHead < len(s.trail) {
		p := s.trail[s.qHead]
		s.qHead++
		if confl := s.propagateBinary(p); confl != nil {
			return confl
		}
		if confl := s.propagateLong(p); confl != nil {
			return confl
		}
	}
	return nil
}

// propagateBinary checks every binary clause that contains ¬p now that p has
// been assigned True, asserting or detecting a conflict on the partner
// literal as required (see ClauseDB.binaryAdj's doc comment for why ¬p is
// the correct key).
func (s *Solver) propagateBinary(p Literal) []Literal {
	for _, q := range s.db.binaryAdj[p.Negate().Index()] {
		switch s.litValue(q) {
		case False:
			return []Literal{p.Negate(), q}
		case Unknown:
			s.enqueue(q, reason{kind: reasonBinary, other: p.Negate()})
		}
	}
	return nil
}

// propagateLong rescans p's watch list (every long clause watching ¬p) now
// that p has been assigned True. For each clause it looks for a new literal
// to watch in place of the falsified one; failing that, it either asserts
// the clause's other watched literal or reports the clause as a conflict.
// The rescan mutates the watch list in place using a read/write index so
// that clauses kept on this list are compacted down without a second
// allocation, and clauses moved to a different literal's list are dropped
// from this one by simply not being written back.
func (s *Solver) propagateLong(p Literal) []Literal {
	ws := s.watchers[p.Index()]
	var conflict []Literal

	i, j := 0, 0
	for i < len(ws) {
		w := ws[i]
		i++

		if conflict != nil {
			ws[j] = w
			j++
			continue
		}

		if s.litValue(w.blocker) == True {
			ws[j] = w
			j++
			continue
		}

		lits := s.db.long[w.clause].literals
		falseLit := p.Negate()
		if lits[0] == falseLit {
			lits[0], lits[1] = lits[1], lits[0]
		}

		newBlocker := lits[0]
		if newBlocker != w.blocker && s.litValue(newBlocker) == True {
			ws[j] = watcher{clause: w.clause, blocker: newBlocker}
			j++
			continue
		}

		moved := false
		for k := 2; k < len(lits); k++ {
			if s.litValue(lits[k]) != False {
				lits[1], lits[k] = lits[k], lits[1]
				s.watch(w.clause, lits[1].Negate(), lits[0])
				moved = true
				break
			}
		}
		if moved {
			continue
		}

		ws[j] = watcher{clause: w.clause, blocker: newBlocker}
		j++

		if s.litValue(newBlocker) == False {
			conflict = append([]Literal(nil), lits...)
		} else {
			s.enqueue(newBlocker, reason{kind: reasonLong, clause: w.clause})
		}
	}

	s.watchers[p.Index()] = ws[:j]
	return conflict
}
