package divisor

import (
	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/internal/crypto/polynomial"
)

// Order returns the order of vanishing of the divisor at the affine point p,
// i.e. the multiplicity of p in the zero set (0 if p is not a zero).
func (d *Divisor) Order(p curves.Point) (int, error) {
	if p.IsIdentity() {
		return 0, errors.Wrap(ErrInvalidInput, "the identity is the pole, not a zero")
	}
	if !d.curve.IsOnCurve(p) {
		return 0, errors.Wrapf(ErrInvalidInput, "point %s is not on %s", p, d.curve.Name())
	}
	if p.Y.IsZero() {
		return d.torsionOrder(p)
	}

	// Expand D in the local parameter t = x - x_p. y(t) is the power series
	// square root of x^3 + ax + b around x_p with y(0) = y_p.
	f := d.curve.Field()
	limit := d.PoleOrder() + 1
	rhs := polynomial.New(f, d.curve.B(), d.curve.A(), f.Zero(), f.One()).Shift(p.X)
	a := d.A.Shift(p.X)
	b := d.B.Shift(p.X)

	y := make([]curves.Element, limit)
	y[0] = p.Y
	inv := p.Y.Add(p.Y).Invert()
	for k := 1; k < limit; k++ {
		s := rhs.Coefficient(k)
		for i := 1; i < k; i++ {
			s = s.Sub(y[i].Mul(y[k-i]))
		}
		y[k] = s.Mul(inv)
	}

	for k := 0; k < limit; k++ {
		c := a.Coefficient(k)
		for i := 0; i <= k; i++ {
			c = c.Add(y[i].Mul(b.Coefficient(k - i)))
		}
		if !c.IsZero() {
			return k, nil
		}
	}
	return 0, defect(ErrMismatch, "divisor vanishes to order >= %d at %s", limit, p)
}

// torsionOrder handles points with y = 0, where y is the local parameter and
// x - x_p vanishes to order two.
func (d *Divisor) torsionOrder(p curves.Point) (int, error) {
	ma, za := rootMultiplicity(d.A, p.X)
	mb, zb := rootMultiplicity(d.B, p.X)
	switch {
	case za && zb:
		return 0, defect(ErrMismatch, "divisor is identically zero")
	case za:
		return 1 + 2*mb, nil
	case zb:
		return 2 * ma, nil
	default:
		return min(2*ma, 1+2*mb), nil
	}
}

// rootMultiplicity returns how often (x - r) divides p, and whether p is zero.
func rootMultiplicity(p *polynomial.Polynomial, r curves.Element) (int, bool) {
	if p.IsZero() {
		return 0, true
	}
	lin := polynomial.Linear(p.Field, r.Neg())
	m := 0
	for {
		q, rem, err := p.DivRem(lin)
		if err != nil || !rem.IsZero() {
			return m, false
		}
		p = q
		m++
	}
}

// Check verifies that the zero set of the divisor is exactly points, with
// multiplicity. Identity entries are ignored.
func (d *Divisor) Check(points []curves.Point) error {
	type zero struct {
		p curves.Point
		m int
	}
	var zeros []zero
	affine := 0

outer:
	for _, p := range points {
		if p.IsIdentity() {
			continue
		}
		affine++
		for i := range zeros {
			if d.curve.Equal(zeros[i].p, p) {
				zeros[i].m++
				continue outer
			}
		}
		zeros = append(zeros, zero{p: p, m: 1})
	}

	if pole := d.PoleOrder(); pole != affine {
		return errors.Wrapf(ErrMismatch, "pole of order %d for %d affine points", pole, affine)
	}
	distinct := make([]curves.Point, len(zeros))
	for i, z := range zeros {
		distinct[i] = z.p
	}
	for i, v := range d.EvaluatePoints(distinct) {
		if !v.IsZero() {
			return errors.Wrapf(ErrMismatch, "no zero at %s", distinct[i])
		}
	}

	for _, z := range zeros {
		ord, err := d.Order(z.p)
		if err != nil {
			return err
		}
		if ord != z.m {
			return errors.Wrapf(ErrMismatch, "order %d at %s, want %d", ord, z.p, z.m)
		}
	}
	return nil
}
