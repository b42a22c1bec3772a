package sat

import "testing"

func TestLBool_Negate(t *testing.T) {
	tests := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tt := range tests {
		if got := tt.in.Negate(); got != tt.want {
			t.Errorf("%v.Negate() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) = %v, want True", Lift(true))
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) = %v, want False", Lift(false))
	}
}

func TestLBool_String(t *testing.T) {
	tests := map[LBool]string{True: "true", False: "false", Unknown: "unknown"}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", l, got, want)
		}
	}
}
