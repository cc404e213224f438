package curves

import (
	"crypto/rand"
	"math/big"

	"github.com/cockroachdb/errors"
)

// ErrUnknownCurve is returned by ByName for unsupported curve names.
var ErrUnknownCurve = errors.New("unknown curve")

// Element is an element of a curve's base field.
// Implementations are immutable: every operation returns a fresh value.
type Element interface {
	// Add returns e + o.
	Add(o Element) Element

	// Sub returns e - o.
	Sub(o Element) Element

	// Mul returns e * o.
	Mul(o Element) Element

	// Square returns e^2.
	Square() Element

	// Neg returns -e.
	Neg() Element

	// Invert returns 1/e, or zero if e is zero.
	Invert() Element

	IsZero() bool
	Equal(o Element) bool

	// Bytes returns the canonical big-endian encoding of the element.
	Bytes() []byte

	// BigInt returns the canonical integer representative in [0, p).
	BigInt() *big.Int

	String() string
}

// Field creates elements of a prime field.
type Field interface {
	Name() string
	Modulus() *big.Int
	Zero() Element
	One() Element

	// NewElement reduces n modulo the field characteristic.
	NewElement(n *big.Int) Element
}

// Point is an affine point on a short-Weierstrass curve, or the identity.
// The identity carries no coordinates.
type Point struct {
	X, Y     Element
	infinity bool
}

// NewPoint returns the affine point (x, y). It does not check the curve equation.
func NewPoint(x, y Element) Point {
	return Point{X: x, Y: y}
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.infinity || p.X == nil || p.Y == nil
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "O"
	}
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}

// Curve is a short-Weierstrass curve y^2 = x^3 + a*x + b with its group law.
type Curve interface {
	Name() string

	// Field returns the base field.
	Field() Field

	// A and B are the defining coefficients.
	A() Element
	B() Element

	// Generator returns the base point G.
	Generator() Point

	// Order returns the order of the base point.
	Order() *big.Int

	// NewScalar generates a random scalar in [1, Order).
	NewScalar() (*big.Int, error)

	IsOnCurve(p Point) bool
	Add(p, q Point) Point
	Double(p Point) Point
	Neg(p Point) Point
	Equal(p, q Point) bool

	// ScalarMult computes k * P
	ScalarMult(p Point, k *big.Int) Point

	// ScalarBaseMult computes k * G
	ScalarBaseMult(k *big.Int) Point
}

// Sum adds all points under the curve's group law.
func Sum(c Curve, points []Point) Point {
	acc := Identity()
	for _, p := range points {
		acc = c.Add(acc, p)
	}
	return acc
}

// ByName returns the curve registered under name.
func ByName(name string) (Curve, error) {
	switch name {
	case "secp256k1":
		return NewSecp256k1(), nil
	case "ed25519", "wei25519":
		return NewEd25519(), nil
	case "toy97":
		return NewToy97(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}
}

// Weierstrass implements the affine group law of y^2 = x^3 + a*x + b over any Field.
type Weierstrass struct {
	name  string
	field Field
	a, b  Element
	g     Point
	order *big.Int
}

// NewWeierstrass returns the curve y^2 = x^3 + a*x + b with base point (gx, gy) of the given order.
func NewWeierstrass(name string, field Field, a, b, gx, gy Element, order *big.Int) *Weierstrass {
	return &Weierstrass{
		name:  name,
		field: field,
		a:     a,
		b:     b,
		g:     NewPoint(gx, gy),
		order: new(big.Int).Set(order),
	}
}

func (w *Weierstrass) Name() string     { return w.name }
func (w *Weierstrass) Field() Field     { return w.field }
func (w *Weierstrass) A() Element       { return w.a }
func (w *Weierstrass) B() Element       { return w.b }
func (w *Weierstrass) Generator() Point { return w.g }
func (w *Weierstrass) Order() *big.Int  { return new(big.Int).Set(w.order) }

func (w *Weierstrass) NewScalar() (*big.Int, error) {
	// Generate random integer in [1, N-1]
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(w.order, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// Rhs evaluates x^3 + a*x + b.
func (w *Weierstrass) Rhs(x Element) Element {
	return x.Square().Mul(x).Add(w.a.Mul(x)).Add(w.b)
}

func (w *Weierstrass) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return true
	}
	return p.Y.Square().Equal(w.Rhs(p.X))
}

func (w *Weierstrass) Neg(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	return NewPoint(p.X, p.Y.Neg())
}

func (w *Weierstrass) Equal(p, q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (w *Weierstrass) Add(p, q Point) Point {
	switch {
	case p.IsIdentity():
		return q
	case q.IsIdentity():
		return p
	}

	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return w.Double(p)
		}
		// Q = -P
		return Identity()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	lambda := q.Y.Sub(p.Y).Mul(q.X.Sub(p.X).Invert())
	return w.chord(p, q.X, lambda)
}

func (w *Weierstrass) Double(p Point) Point {
	if p.IsIdentity() || p.Y.IsZero() {
		return Identity()
	}

	// lambda = (3x^2 + a) / 2y
	x2 := p.X.Square()
	num := x2.Add(x2).Add(x2).Add(w.a)
	lambda := num.Mul(p.Y.Add(p.Y).Invert())
	return w.chord(p, p.X, lambda)
}

// chord finishes an addition given the slope through p and a second point with x-coordinate x2.
func (w *Weierstrass) chord(p Point, x2, lambda Element) Point {
	x3 := lambda.Square().Sub(p.X).Sub(x2)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return NewPoint(x3, y3)
}

func (w *Weierstrass) ScalarMult(p Point, k *big.Int) Point {
	// Double-and-add from the most significant bit.
	e := new(big.Int).Abs(k)
	acc := Identity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = w.Double(acc)
		if e.Bit(i) == 1 {
			acc = w.Add(acc, p)
		}
	}
	if k.Sign() < 0 {
		return w.Neg(acc)
	}
	return acc
}

func (w *Weierstrass) ScalarBaseMult(k *big.Int) Point {
	return w.ScalarMult(w.g, k)
}
