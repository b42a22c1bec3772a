package sat_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hartwell-labs/gocdcl/internal/dimacs"
	"github.com/hartwell-labs/gocdcl/internal/sat"
)

// recorder wraps a *sat.Solver and remembers the raw clause literals it was
// given, so a satisfying assignment can be checked against the original
// formula rather than trusted blindly.
type recorder struct {
	*sat.Solver
	clauses [][]sat.Literal
}

func (r *recorder) AddClause(lits []sat.Literal) error {
	clause := append([]sat.Literal(nil), lits...)
	r.clauses = append(r.clauses, clause)
	return r.Solver.AddClause(lits)
}

func (r *recorder) satisfied() bool {
	for _, clause := range r.clauses {
		ok := false
		for _, l := range clause {
			if r.Value(l) == sat.True {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// TestSolveAll walks testdata/*.cnf, solving each and checking its result
// against the filename convention (".sat." or ".unsat." marks the expected
// verdict, mirroring the naming scheme used by the reference solver this
// core's semantics were checked against). Satisfiable instances additionally
// have their produced assignment checked against every original clause.
func TestSolveAll(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.cnf")
	if err != nil {
		t.Fatalf("Glob(): unexpected error: %s", err)
	}
	if len(matches) == 0 {
		t.Fatal("no testdata/*.cnf files found")
	}

	for _, path := range matches {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			var wantSAT bool
			switch {
			case strings.Contains(path, ".sat."):
				wantSAT = true
			case strings.Contains(path, ".unsat."):
				wantSAT = false
			default:
				t.Fatalf("file name %q must contain either %q or %q", path, ".sat.", ".unsat.")
			}

			r := &recorder{Solver: sat.NewDefaultSolver()}
			if err := dimacs.LoadDIMACS(path, false, r); err != nil {
				t.Fatalf("LoadDIMACS(%q): unexpected error: %s", path, err)
			}

			status := r.Solve()
			switch status {
			case sat.True:
				if !wantSAT {
					t.Fatalf("Solve() = True, want False (per file name)")
				}
				if !r.satisfied() {
					t.Fatalf("Solve() reported True but the produced assignment does not satisfy every clause")
				}
			case sat.False:
				if wantSAT {
					t.Fatalf("Solve() = False, want True (per file name)")
				}
			default:
				t.Fatalf("Solve() = %v, want a definite result", status)
			}
		})
	}
}
