// Package divisor builds elliptic-curve divisors: for points summing to the
// identity, the function a(x) + y*b(x) whose zeros are exactly those points.
package divisor

import (
	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/internal/crypto/polynomial"
)

// Divisor is the function D(x, y) = A(x) + y*B(x) on a curve. It is identified
// with its zero set: the multiset of points it was built from.
type Divisor struct {
	A *polynomial.Polynomial
	B *polynomial.Polynomial

	curve curves.Curve
	n     int
}

// DegreeBounds returns the maximum degrees of A and B for a multiset of n points:
// ceil((n-1)/2) and floor((n-3)/2). A bound of -1 means the polynomial is zero.
func DegreeBounds(n int) (aMax, bMax int) {
	if n < 1 {
		return -1, -1
	}
	aMax = n / 2
	bMax = -1
	if n >= 3 {
		bMax = (n - 3) / 2
	}
	return aMax, bMax
}

// Curve returns the curve the divisor lives on.
func (d *Divisor) Curve() curves.Curve {
	return d.curve
}

// Size returns the number of points the divisor was built from, before padding.
func (d *Divisor) Size() int {
	return d.n
}

// PoleOrder returns the order of the pole at infinity, which equals the number
// of affine points in the zero set.
func (d *Divisor) PoleOrder() int {
	// ord_inf(x) = -2, ord_inf(y) = -3
	pa := 2 * d.A.Degree()
	pb := -1
	if !d.B.IsZero() {
		pb = 3 + 2*d.B.Degree()
	}
	return max(pa, pb, 0)
}

// Evaluate computes A(x) + y*B(x).
func (d *Divisor) Evaluate(x, y curves.Element) curves.Element {
	return d.A.Evaluate(x).Add(y.Mul(d.B.Evaluate(x)))
}

// Evaluate computes D(x, y).
func Evaluate(d *Divisor, x, y curves.Element) curves.Element {
	return d.Evaluate(x, y)
}

// EvaluatePoints computes D at each affine point in one pass over A and B.
// Identity entries yield nil.
func (d *Divisor) EvaluatePoints(points []curves.Point) []curves.Element {
	xs := make([]curves.Element, 0, len(points))
	for _, p := range points {
		if !p.IsIdentity() {
			xs = append(xs, p.X)
		}
	}
	as, bs := d.A.EvaluateMulti(xs), d.B.EvaluateMulti(xs)

	out := make([]curves.Element, len(points))
	j := 0
	for i, p := range points {
		if p.IsIdentity() {
			continue
		}
		out[i] = as[j].Add(p.Y.Mul(bs[j]))
		j++
	}
	return out
}

// IsZeroAt reports whether p is a zero of the divisor. The identity is never a
// zero: the only pole is there.
func (d *Divisor) IsZeroAt(p curves.Point) bool {
	if p.IsIdentity() {
		return false
	}
	return d.Evaluate(p.X, p.Y).IsZero()
}

// DerivativeAt returns dD/dx along the curve at the affine point (x, y), using
// dy/dx = (3x^2 + a) / 2y. It fails with ErrDegenerateGeometry when y = 0.
func (d *Divisor) DerivativeAt(x, y curves.Element) (curves.Element, error) {
	if y.IsZero() {
		return nil, errors.Wrap(ErrDegenerateGeometry, "x is not a local parameter at a 2-torsion point")
	}
	x2 := x.Square()
	dy := x2.Add(x2).Add(x2).Add(d.curve.A()).Mul(y.Add(y).Invert())

	return d.A.Derivative().Evaluate(x).
		Add(dy.Mul(d.B.Evaluate(x))).
		Add(y.Mul(d.B.Derivative().Evaluate(x))), nil
}

// Normalize returns the divisor scaled so the term carrying the pole at
// infinity has coefficient one. Divisors of the same multiset normalize to the
// same coefficients regardless of input order.
func (d *Divisor) Normalize() *Divisor {
	lead := d.A.Leading()
	if !d.B.IsZero() && 3+2*d.B.Degree() > 2*d.A.Degree() {
		lead = d.B.Leading()
	}
	if lead.IsZero() {
		return d
	}
	inv := lead.Invert()
	return &Divisor{A: d.A.Scale(inv), B: d.B.Scale(inv), curve: d.curve, n: d.n}
}

// ToFixedWidth exports the coefficients of A and B, zero-padded to the degree
// bounds of a multiset of maxPoints points. The vectors have aMax+1 and bMax+1
// entries, see DegreeBounds.
func (d *Divisor) ToFixedWidth(maxPoints int) ([]curves.Element, []curves.Element, error) {
	aMax, bMax := DegreeBounds(maxPoints)
	if d.A.Degree() > aMax || d.B.Degree() > bMax {
		return nil, nil, defect(ErrDegreeOverflow,
			"deg(a) = %d, deg(b) = %d exceed bounds %d, %d", d.A.Degree(), d.B.Degree(), aMax, bMax)
	}
	return pad(d.A, aMax+1), pad(d.B, bMax+1), nil
}

// ToFixedWidth exports d's coefficients, see (*Divisor).ToFixedWidth.
func ToFixedWidth(d *Divisor, maxPoints int) ([]curves.Element, []curves.Element, error) {
	return d.ToFixedWidth(maxPoints)
}

func pad(p *polynomial.Polynomial, width int) []curves.Element {
	out := make([]curves.Element, width)
	for i := range out {
		out[i] = p.Coefficient(i)
	}
	return out
}

func (d *Divisor) String() string {
	return "(" + d.A.String() + ") + y*(" + d.B.String() + ")"
}
