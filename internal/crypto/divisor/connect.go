package divisor

import (
	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/internal/crypto/polynomial"
)

// connection enumerates how two points are joined by a connecting function.
type connection int

const (
	connBothIdentity connection = iota
	connOneIdentity
	connTangent
	connSecant
	connVertical
)

func (c connection) String() string {
	switch c {
	case connBothIdentity:
		return "both-identity"
	case connOneIdentity:
		return "one-identity"
	case connTangent:
		return "tangent"
	case connSecant:
		return "secant"
	case connVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// classify picks the connecting function for p and q.
func classify(p, q curves.Point) (connection, error) {
	switch {
	case p.IsIdentity() && q.IsIdentity():
		return connBothIdentity, nil
	case p.IsIdentity() || q.IsIdentity():
		return connOneIdentity, nil
	case !p.X.Equal(q.X):
		return connSecant, nil
	case p.Y.Equal(q.Y):
		if p.Y.IsZero() {
			return 0, errors.Wrapf(ErrDegenerateGeometry, "tangent at 2-torsion point %s", p)
		}
		return connTangent, nil
	case p.Y.Equal(q.Y.Neg()):
		return connVertical, nil
	default:
		return 0, errors.Wrapf(ErrDegenerateGeometry, "cannot connect %s and %s", p, q)
	}
}

// connect returns the function vanishing at p, q and -(p+q) with a pole of
// order three at infinity (identities absorb one order each), together with
// the running point -(p+q).
func (b *builder) connect(p, q curves.Point) (function, curves.Point, error) {
	kind, err := classify(p, q)
	if err != nil {
		return function{}, curves.Point{}, err
	}

	f := b.field
	switch kind {
	case connBothIdentity:
		return function{
			a: polynomial.Constant(f, f.One()),
			b: polynomial.Zero(f),
		}, curves.Identity(), nil

	case connOneIdentity:
		r := p
		if r.IsIdentity() {
			r = q
		}
		return b.vertical(r), b.curve.Neg(r), nil

	case connVertical:
		return b.vertical(p), curves.Identity(), nil
	}

	var lambda curves.Element
	if kind == connTangent {
		// (3x^2 + a) / 2y
		x2 := p.X.Square()
		lambda = x2.Add(x2).Add(x2).Add(b.curve.A()).Mul(p.Y.Add(p.Y).Invert())
	} else {
		// (y_q - y_p) / (x_q - x_p)
		lambda = q.Y.Sub(p.Y).Mul(q.X.Sub(p.X).Invert())
	}

	// y - lambda*x - (y_p - lambda*x_p)
	mu := p.Y.Sub(lambda.Mul(p.X))
	line := function{
		a: polynomial.New(f, mu.Neg(), lambda.Neg()),
		b: polynomial.Constant(f, f.One()),
	}
	return line, b.curve.Neg(b.curve.Add(p, q)), nil
}

// vertical returns x - x_r.
func (b *builder) vertical(r curves.Point) function {
	return function{
		a: polynomial.Linear(b.field, r.X.Neg()),
		b: polynomial.Zero(b.field),
	}
}
