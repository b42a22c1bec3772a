package sat

import "strings"

// ClauseID is a stable, non-owning handle to a long clause held by the
// ClauseDB. It remains valid for the lifetime of the solver: this core never
// deletes a clause once added (learned clauses accumulate without bound; see
// spec §5 and the Non-goals around clause-database reduction).
type ClauseID int

// Clause is a long clause (length >= 3). Its first two literals are the
// watched positions (spec §3, Watchlists invariant). Clauses of length 1 or
// 2 never reach this type: units are asserted directly and pairs live in the
// ClauseDB's binary adjacency lists instead (spec §4.C, §9 "Binary clauses
// specially").
type Clause struct {
	literals []Literal
	learnt   bool
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "clause[]"
	}
	var sb strings.Builder
	sb.WriteString("clause[")
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseDB owns every clause added to the solver. Binary clauses are stored
// inline as per-literal adjacency (no watch bookkeeping required: the
// partner literal is directly reachable); clauses of three or more literals
// are heap-resident and watched via the solver's watch lists.
type ClauseDB struct {
	long []*Clause

	// binaryAdj[l.Index()] lists, for every binary clause containing l, its
	// partner literal. Registered under the literal itself (not its
	// negation): the clause {a, b} is looked up through binaryAdj[¬a] and
	// binaryAdj[¬b] at propagation time (see propagateBinary in
	// propagate.go), because a binary clause becomes interesting exactly
	// when one of its own literals is falsified.
	binaryAdj [][]Literal

	// pendingUnits accumulates clauses of length 1 added before Init. Per
	// spec §4.C they are recorded, not asserted, until Init runs BCP.
	pendingUnits []Literal
}

func newClauseDB() *ClauseDB {
	return &ClauseDB{}
}

// growTo extends the binary adjacency table to cover nVars variables.
func (db *ClauseDB) growTo(nVars int) {
	for len(db.binaryAdj) < nVars*2 {
		db.binaryAdj = append(db.binaryAdj, nil)
	}
}

func (db *ClauseDB) addBinary(a, b Literal) {
	db.binaryAdj[a.Index()] = append(db.binaryAdj[a.Index()], b)
	db.binaryAdj[b.Index()] = append(db.binaryAdj[b.Index()], a)
}

// clauseOutcome describes what happened when a clause was handed to the
// database during normalization: stored, discarded as a tautology, or found
// to be the empty clause (immediate UNSAT).
type clauseOutcome int

const (
	clauseStored clauseOutcome = iota
	clauseTautology
	clauseEmpty
)

// normalize deduplicates literals and detects tautologies (a clause
// containing both polarities of some variable), per spec §4.C. It operates
// purely syntactically: no assignment exists yet for clauses added through
// the public AddClause path, since units are deferred rather than asserted
// immediately.
func normalize(lits []Literal) ([]Literal, clauseOutcome) {
	if len(lits) == 0 {
		return nil, clauseEmpty
	}
	seen := make(map[Literal]struct{}, len(lits))
	out := lits[:0:0]
	for _, l := range lits {
		if _, ok := seen[l.Negate()]; ok {
			return nil, clauseTautology
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, clauseStored
}

// addClause registers an already-normalized clause with the database and,
// for clauses of length >= 3, with the solver's watch lists.
func (s *Solver) addClause(lits []Literal, learnt bool) {
	switch len(lits) {
	case 1:
		s.db.pendingUnits = append(s.db.pendingUnits, lits[0])
	case 2:
		s.db.addBinary(lits[0], lits[1])
	default:
		c := &Clause{literals: append([]Literal(nil), lits...), learnt: learnt}
		id := ClauseID(len(s.db.long))
		s.db.long = append(s.db.long, c)
		s.watch(id, c.literals[0].Negate(), c.literals[1])
		s.watch(id, c.literals[1].Negate(), c.literals[0])
	}
}

// learnClause installs a first-UIP clause produced by analysis (spec §4.E)
// and immediately asserts its UIP literal (lits[0]), which by construction
// is unit under the assignment restored by the backjump the caller must
// already have performed.
func (s *Solver) learnClause(lits []Literal) {
	switch len(lits) {
	case 1:
		s.enqueue(lits[0], reason{kind: reasonUnit})
	case 2:
		s.db.addBinary(lits[0], lits[1])
		s.enqueue(lits[0], reason{kind: reasonBinary, other: lits[1]})
	default:
		// Move the literal with the highest decision level into the second
		// watched position so the clause stays unit-triggering for as long
		// as possible after the backjump.
		maxLevel, wl := -1, 1
		for i := 1; i < len(lits); i++ {
			if lv := s.level[lits[i].Variable()]; lv > maxLevel {
				maxLevel = lv
				wl = i
			}
		}
		lits[1], lits[wl] = lits[wl], lits[1]

		c := &Clause{literals: append([]Literal(nil), lits...), learnt: true}
		id := ClauseID(len(s.db.long))
		s.db.long = append(s.db.long, c)
		s.watch(id, c.literals[0].Negate(), c.literals[1])
		s.watch(id, c.literals[1].Negate(), c.literals[0])

		s.enqueue(lits[0], reason{kind: reasonLong, clause: id})
	}
}
