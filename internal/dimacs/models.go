package dimacs

import (
	"fmt"

	"github.com/rhartert/dimacs"
)

// ParseModels reads a .models test file: one line per expected model, each a
// blank-separated list of signed integers terminated by 0, the same literal
// convention as a DIMACS clause line but with no problem ("p cnf ...") line.
func ParseModels(filename string) ([][]bool, error) {
	r, err := openReader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacs: parsing %q: %w", filename, err)
	}
	return b.models, nil
}

// modelBuilder adapts the github.com/rhartert/dimacs Builder protocol to
// collect each "clause" line as a model: the literal signs give the
// variable's truth value directly, with no clausal meaning intended.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacs: .models files must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(rawLits []int) error {
	model := make([]bool, len(rawLits))
	for i, l := range rawLits {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
