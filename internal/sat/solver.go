package sat

import (
	"fmt"
	"log"
	"time"
)

// Solver is a from-scratch CDCL SAT solver: literal/variable algebra, a
// trail-based assignment, a clause database split between binary adjacency
// lists and watched long clauses, two-watched-literal BCP, first-UIP
// conflict analysis, and an EVSIDS decision heuristic. It is single-threaded
// and has no concept of incremental solving under assumptions: every clause
// must be added before the first call to Init or Solve.
type Solver struct {
	db *ClauseDB

	order    *VarOrder
	varDecay float64

	watchers [][]watcher

	assigns []LBool   // indexed by Variable
	level   []int     // indexed by Variable, decision level at assignment
	reasons []reason  // indexed by Variable, antecedent of the assignment
	trail   []Literal // literals in assignment order
	trailLim []int    // trail index of the start of each decision level
	qHead    int      // next trail index Propagate has not yet processed

	initialized bool
	unsat       bool // true once a root-level conflict has been derived

	phaseSaving bool

	seenVar *ResetSet // scratch set reused by analyze

	maxConflicts int64
	timeout      time.Duration
	hasStopCond  bool
	startTime    time.Time

	// Statistics, printed by the CLI and exercised by tests.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalDecisions  int64
	TotalIterations int64
}

// Options configures a Solver. The zero Options is invalid; use
// DefaultOptions or fill in every field explicitly.
type Options struct {
	VariableDecay float64
	MaxConflicts  int64
	Timeout       time.Duration
	PhaseSaving   bool
}

// DefaultOptions is a reasonable configuration for most CNF instances: no
// conflict or time budget (search runs to completion) and phase saving off
// (every decision defaults to the positive literal the first time it is
// tried, matching plain VSIDS).
var DefaultOptions = Options{
	VariableDecay: 0.95,
	MaxConflicts:  -1,
	Timeout:       -1,
	PhaseSaving:   false,
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewSolver returns a new, empty Solver configured with ops.
func NewSolver(ops Options) *Solver {
	s := &Solver{
		db:           newClauseDB(),
		order:        NewVarOrder(ops.VariableDecay, ops.PhaseSaving),
		varDecay:     ops.VariableDecay,
		seenVar:      &ResetSet{},
		maxConflicts: -1,
		timeout:      -1,
		phaseSaving:  ops.PhaseSaving,
	}
	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflicts = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}
	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflicts >= 0 && s.maxConflicts <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}
	return false
}

// NumVariables returns the number of variables declared with AddVariable.
func (s *Solver) NumVariables() int {
	return len(s.assigns)
}

// NumAssigns returns the number of currently assigned variables.
func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

// NumConstraints returns the number of original (non-learnt) clauses of
// length >= 3 held by the clause database. Unit and binary original clauses
// are not counted since they are stored without a Clause value.
func (s *Solver) NumConstraints() int {
	n := 0
	for _, c := range s.db.long {
		if !c.learnt {
			n++
		}
	}
	return n
}

// NumLearnts returns the number of learned long clauses. This core never
// deletes a learnt clause, so the count only grows.
func (s *Solver) NumLearnts() int {
	n := 0
	for _, c := range s.db.long {
		if c.learnt {
			n++
		}
	}
	return n
}

// AddVariable declares a new variable and returns its identity. Variables
// must be declared before any clause that references them is added.
func (s *Solver) AddVariable() int {
	v := Variable(len(s.assigns))
	s.assigns = append(s.assigns, Unknown)
	s.level = append(s.level, -1)
	s.reasons = append(s.reasons, reason{})
	s.watchers = append(s.watchers, nil, nil) // one list per literal
	s.db.growTo(len(s.assigns))
	s.seenVar.Expand()
	s.order.AddVar(0, true)
	return int(v)
}

// AddClause adds a clause to the database. It returns ErrAlreadyInitialized
// if called after Init (or Solve, which calls Init implicitly), and
// ErrInvalidLiteral if the clause references an undeclared variable. There
// is no zero Literal value to reject (Literal 0 is variable 0's positive
// literal); a zero DIMACS integer is refused earlier, by FromDIMACS
// panicking. A clause containing both polarities of the same
// variable is silently dropped (it is a tautology, always satisfied); the
// empty clause marks the problem unsatisfiable immediately.
func (s *Solver) AddClause(lits []Literal) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}
	for _, l := range lits {
		if int(l.Variable()) < 0 || int(l.Variable()) >= s.NumVariables() {
			return ErrInvalidLiteral
		}
	}

	normalized, outcome := normalize(lits)
	switch outcome {
	case clauseTautology:
		return nil
	case clauseEmpty:
		s.unsat = true
		return nil
	default:
		s.addClause(normalized, false)
		return nil
	}
}

// Init runs unit propagation over every clause added so far and locks the
// database against further additions. It is idempotent and is called
// automatically by Solve. It always returns nil: an instance found
// unsatisfiable here is recorded internally and reported by Solve as False,
// not as an error.
func (s *Solver) Init() error {
	if s.initialized {
		return nil
	}
	s.initialized = true

	for _, l := range s.db.pendingUnits {
		if !s.enqueue(l, reason{kind: reasonUnit}) {
			s.unsat = true
			return nil
		}
	}

	if s.unsat {
		return nil
	}
	if conflict := s.Propagate(); conflict != nil {
		s.unsat = true
	}
	return nil
}

// Value returns the current value of lit. Valid at any time, including
// after Solve returns True: the satisfying assignment remains on the trail
// and is never rolled back.
func (s *Solver) Value(lit Literal) LBool {
	return s.litValue(lit)
}

// Assignment returns every literal currently on the trail, in the order
// they were assigned. After a True result from Solve this is a complete
// satisfying assignment (spec §6).
func (s *Solver) Assignment() []Literal {
	out := make([]Literal, len(s.trail))
	copy(out, s.trail)
	return out
}

// Solve runs the CDCL search loop to completion (spec §4.G), restarting
// with a trivial geometric schedule between runs, and returns True, False,
// or Unknown (if a stop condition — a conflict budget or timeout — cuts the
// search short before either is established).
func (s *Solver) Solve() LBool {
	if err := s.Init(); err != nil {
		// Init as currently implemented never returns a non-nil error; kept
		// for symmetry with the rest of the public API's error returns.
		log.Fatalf("sat: init: %v", err)
	}
	if s.unsat {
		return False
	}

	maxConflicts := int64(100)
	status := Unknown
	s.startTime = time.Now()

	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()

	for status == Unknown {
		status = s.search(maxConflicts)
		maxConflicts += maxConflicts / 10

		if s.shouldStop() {
			break
		}
	}

	s.printSearchStats()
	s.printSeparator()

	return status
}

// search runs CDCL until it finds a satisfying assignment, proves
// unsatisfiability, hits the restart's conflict budget (returning Unknown
// so Solve can restart with a larger one), or hits a configured stop
// condition.
func (s *Solver) search(maxConflicts int64) LBool {
	if s.unsat {
		return False
	}
	s.TotalRestarts++

	var conflicts int64
	for !s.shouldStop() {
		s.TotalIterations++
		if s.TotalIterations%10000 == 0 {
			s.printSearchStats()
		}

		if conflict := s.Propagate(); conflict != nil {
			s.TotalConflicts++
			conflicts++

			if s.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			learnt, backjumpLevel := s.analyze(conflict)
			s.backjumpTo(backjumpLevel)
			s.learnClause(learnt)
			s.order.DecayScores()

			continue
		}

		if s.NumAssigns() == s.NumVariables() {
			return True
		}
		if conflicts > maxConflicts {
			s.backjumpTo(0)
			return Unknown
		}

		lit, ok := s.order.NextDecision(s.VarValue)
		if !ok {
			return True // every variable is assigned: satisfying assignment found
		}
		s.decide(lit)
	}

	return Unknown
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time     iterations      conflicts       restarts       decisions")
}

func (s *Solver) printSearchStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalIterations,
		s.TotalConflicts,
		s.TotalRestarts,
		s.TotalDecisions)
}
