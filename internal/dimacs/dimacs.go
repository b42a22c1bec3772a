// Package dimacs loads and writes the DIMACS CNF text format that spec
// round-trip testing and the command-line frontend both depend on.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/hartwell-labs/gocdcl/internal/sat"
)

// Writer receives the variables and clauses parsed from a DIMACS file. It is
// satisfied by *sat.Solver.
type Writer interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename and feeds its variables
// and clauses to w, in file order.
func LoadDIMACS(filename string, gzipped bool, w Writer) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{w: w}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: parsing %q: %w", filename, err)
	}
	return nil
}

// builder adapts a Writer to the github.com/rhartert/dimacs Builder
// callback protocol.
type builder struct {
	w Writer
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", problem)
	}
	for i := 0; i < nVars; i++ {
		b.w.AddVariable()
	}
	return nil
}

func (b *builder) Clause(rawLits []int) error {
	lits := make([]sat.Literal, len(rawLits))
	for i, l := range rawLits {
		lits[i] = sat.FromDIMACS(l)
	}
	return b.w.AddClause(lits)
}

func (b *builder) Comment(_ string) error {
	return nil // comments carry no semantic content
}

// WriteDIMACS emits nVars and clauses as a DIMACS CNF file. Clauses are
// signed-integer literals, one DIMACS variable (1-indexed) per entry, with
// no trailing 0 (WriteDIMACS appends it). It exists so the parser's output
// can be serialized back out, re-parsed and diffed against the original
// parse, which is how the DIMACS round-trip property (spec §8) is tested.
func WriteDIMACS(w io.Writer, nVars int, clauses [][]int) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", nVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
