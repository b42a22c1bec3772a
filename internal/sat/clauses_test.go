package sat

import "testing"

func TestNormalize_dedup(t *testing.T) {
	a, b := PositiveLiteral(0), PositiveLiteral(1)
	lits, outcome := normalize([]Literal{a, b, a})
	if outcome != clauseStored {
		t.Fatalf("normalize(): outcome = %v, want clauseStored", outcome)
	}
	if len(lits) != 2 {
		t.Fatalf("normalize(): got %d literals, want 2: %v", len(lits), lits)
	}
}

func TestNormalize_tautology(t *testing.T) {
	a := PositiveLiteral(0)
	_, outcome := normalize([]Literal{a, a.Negate()})
	if outcome != clauseTautology {
		t.Fatalf("normalize(): outcome = %v, want clauseTautology", outcome)
	}
}

func TestNormalize_empty(t *testing.T) {
	_, outcome := normalize(nil)
	if outcome != clauseEmpty {
		t.Fatalf("normalize(nil): outcome = %v, want clauseEmpty", outcome)
	}
}

func TestClauseString(t *testing.T) {
	c := &Clause{literals: []Literal{PositiveLiteral(0), NegativeLiteral(1)}}
	if got, want := c.String(), "clause[0 -1]"; got != want {
		t.Errorf("Clause.String() = %q, want %q", got, want)
	}
	empty := &Clause{}
	if got, want := empty.String(), "clause[]"; got != want {
		t.Errorf("Clause.String() = %q, want %q", got, want)
	}
}
