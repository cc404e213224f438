package divisor

import (
	"github.com/smallyu/go-ecdivisors/internal/crypto/polynomial"
)

// function is a(x) + y*b(x) in the coordinate ring of the curve.
type function struct {
	a, b *polynomial.Polynomial
}

// mul multiplies two functions and folds y^2 back through the curve relation:
//
//	(a1 + y b1)(a2 + y b2) = a1 a2 + (x^3 + ax + b) b1 b2 + y (a1 b2 + a2 b1)
func (f function) mul(g function, rhs *polynomial.Polynomial) function {
	return function{
		a: f.a.Mul(g.a).Add(rhs.Mul(f.b.Mul(g.b))),
		b: f.a.Mul(g.b).Add(g.a.Mul(f.b)),
	}
}

// divExact divides both parts by d. Any remainder is an engine defect.
func (f function) divExact(d *polynomial.Polynomial) (function, error) {
	qa, ra, err := f.a.DivRem(d)
	if err != nil {
		return function{}, defect(ErrDivision, "%v", err)
	}
	qb, rb, err := f.b.DivRem(d)
	if err != nil {
		return function{}, defect(ErrDivision, "%v", err)
	}
	if !ra.IsZero() || !rb.IsZero() {
		return function{}, defect(ErrDivision, "non-zero remainder dividing by %s", d)
	}
	return function{a: qa, b: qb}, nil
}
