package duration

import "testing"

func TestNewReducesAndRejectsZeroDenominator(t *testing.T) {
	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
		wantErr bool
	}{
		{"already reduced", 1, 2, 1, 2, false},
		{"reduces 2/4", 2, 4, 1, 2, false},
		{"reduces 6/3", 6, 3, 2, 1, false},
		{"negative numerator", -3, 6, -1, 2, false},
		{"negative denominator flips sign", 1, -2, -1, 2, false},
		{"zero denominator", 1, 0, 0, 0, true},
		{"zero numerator", 0, 5, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.num, tt.den)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d, %d) error = %v, wantErr %v", tt.num, tt.den, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Num != tt.wantNum || got.Den != tt.wantDen {
				t.Errorf("New(%d, %d) = %d/%d, want %d/%d", tt.num, tt.den, got.Num, got.Den, tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	half := MustNew(1, 2)
	third := MustNew(1, 3)

	if got := half.Add(third); !got.Equal(MustNew(5, 6)) {
		t.Errorf("1/2 + 1/3 = %v, want 5/6", got)
	}
	if got := half.Sub(third); !got.Equal(MustNew(1, 6)) {
		t.Errorf("1/2 - 1/3 = %v, want 1/6", got)
	}
	if got := half.Mul(third); !got.Equal(MustNew(1, 6)) {
		t.Errorf("1/2 * 1/3 = %v, want 1/6", got)
	}
	if got := half.Div(third); !got.Equal(MustNew(3, 2)) {
		t.Errorf("1/2 / 1/3 = %v, want 3/2", got)
	}
}

func TestSubdivideAndMultiplyInt(t *testing.T) {
	whole := MustNew(1, 1)

	if got := whole.Subdivide(4); !got.Equal(MustNew(1, 4)) {
		t.Errorf("1/1 subdivided by 4 = %v, want 1/4", got)
	}
	if got := MustNew(1, 4).MultiplyInt(3); !got.Equal(MustNew(3, 4)) {
		t.Errorf("1/4 * 3 = %v, want 3/4", got)
	}
}

func TestEqualityIsStructural(t *testing.T) {
	a := MustNew(2, 4)
	b := MustNew(1, 2)
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal after reduction", a, b)
	}
}

func TestLCMOfDenominators(t *testing.T) {
	ds := []Duration{MustNew(1, 2), MustNew(1, 3), MustNew(1, 4)}
	if got := LCMOfDenominators(ds); got != 12 {
		t.Errorf("LCMOfDenominators = %d, want 12", got)
	}
	if got := LCMOfDenominators(nil); got != 1 {
		t.Errorf("LCMOfDenominators(nil) = %d, want 1", got)
	}
}

func TestIsZeroAndIsPositive(t *testing.T) {
	zero := MustNew(0, 1)
	if !zero.IsZero() {
		t.Error("0/1 should be zero")
	}
	if zero.IsPositive() {
		t.Error("0/1 should not be positive")
	}
	pos := MustNew(1, 4)
	if pos.IsZero() {
		t.Error("1/4 should not be zero")
	}
	if !pos.IsPositive() {
		t.Error("1/4 should be positive")
	}
}
