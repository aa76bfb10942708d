// Package duration implements exact rational arithmetic over musical
// durations. Every value stays reduced (gcd(num, den) == 1, den > 0) so
// two durations compare equal iff they represent the same rational.
package duration

import "fmt"

// Duration is a reduced fraction num/den, den always positive.
type Duration struct {
	Num int64
	Den int64
}

// New builds a reduced Duration. Returns an error if den == 0.
func New(num, den int64) (Duration, error) {
	if den == 0 {
		return Duration{}, fmt.Errorf("invalid duration: denominator must not be 0, got %d/%d", num, den)
	}
	return reduce(num, den), nil
}

// MustNew is New but panics on error; for literal durations known at
// compile time (e.g. 1/2) where den == 0 would be a programmer error.
func MustNew(num, den int64) Duration {
	d, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return d
}

func reduce(num, den int64) Duration {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		g = 1
	}
	return Duration{Num: num / g, Den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a/gcd(a, b)) * abs(b)
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Add returns d + other.
func (d Duration) Add(other Duration) Duration {
	l := lcm(d.Den, other.Den)
	num := d.Num*(l/d.Den) + other.Num*(l/other.Den)
	return reduce(num, l)
}

// Sub returns d - other.
func (d Duration) Sub(other Duration) Duration {
	l := lcm(d.Den, other.Den)
	num := d.Num*(l/d.Den) - other.Num*(l/other.Den)
	return reduce(num, l)
}

// Mul returns d * other.
func (d Duration) Mul(other Duration) Duration {
	return reduce(d.Num*other.Num, d.Den*other.Den)
}

// Div returns d / other (multiply by the reciprocal).
func (d Duration) Div(other Duration) Duration {
	return reduce(d.Num*other.Den, d.Den*other.Num)
}

// Subdivide returns num/(den*k), reduced. Used to distribute a
// duration evenly across k siblings in a group.
func (d Duration) Subdivide(k int64) Duration {
	return reduce(d.Num, d.Den*k)
}

// MultiplyInt returns (num*k)/den, reduced.
func (d Duration) MultiplyInt(k int64) Duration {
	return reduce(d.Num*k, d.Den)
}

// Equal reports whether d and other represent the same rational.
// Both are assumed already reduced, which every constructor guarantees.
func (d Duration) Equal(other Duration) bool {
	return d.Num == other.Num && d.Den == other.Den
}

// IsZero reports whether d represents exactly zero.
func (d Duration) IsZero() bool {
	return d.Num == 0
}

// IsPositive reports whether d represents a value greater than zero.
func (d Duration) IsPositive() bool {
	return d.Num > 0
}

func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.Num, d.Den)
}

// LCMOfDenominators returns the LCM of the denominators of ds. Returns
// 1 for an empty slice.
func LCMOfDenominators(ds []Duration) int64 {
	result := int64(1)
	for _, d := range ds {
		result = lcm(result, d.Den)
	}
	return result
}
