package sat

import "testing"

func TestLiteral_encoding(t *testing.T) {
	for v := Variable(0); v < 5; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if got := pos.Variable(); got != v {
			t.Errorf("PositiveLiteral(%d).Variable() = %d, want %d", v, got, v)
		}
		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d).IsPositive() = false, want true", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d).IsPositive() = true, want false", v)
		}
		if got := pos.Negate(); got != neg {
			t.Errorf("PositiveLiteral(%d).Negate() = %v, want %v", v, got, neg)
		}
		if got := neg.Negate(); got != pos {
			t.Errorf("NegativeLiteral(%d).Negate() = %v, want %v", v, got, pos)
		}
		if pos.Negate().Negate() != pos {
			t.Errorf("double negation did not return the original literal")
		}
	}
}

func TestFromDIMACS(t *testing.T) {
	tests := []struct {
		in   int
		want Literal
	}{
		{1, PositiveLiteral(0)},
		{-1, NegativeLiteral(0)},
		{42, PositiveLiteral(41)},
		{-42, NegativeLiteral(41)},
	}
	for _, tt := range tests {
		if got := FromDIMACS(tt.in); got != tt.want {
			t.Errorf("FromDIMACS(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromDIMACS_zeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromDIMACS(0): want panic, got none")
		}
	}()
	FromDIMACS(0)
}

func TestLiteral_indexIsDenseAndUnique(t *testing.T) {
	seen := map[int]Literal{}
	for v := Variable(0); v < 8; v++ {
		for _, l := range []Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			idx := l.Index()
			if other, ok := seen[idx]; ok {
				t.Fatalf("literals %v and %v collide on index %d", other, l, idx)
			}
			seen[idx] = l
		}
	}
	// Index values must densely cover [0, 2*nVars).
	for i := 0; i < 16; i++ {
		if _, ok := seen[i]; !ok {
			t.Errorf("index %d not covered by any literal", i)
		}
	}
}
