package curves

import (
	"fmt"
	"math/big"
)

// PrimeField is GF(p) on top of math/big. It backs small test curves and any
// curve without a dedicated field implementation.
type PrimeField struct {
	name string
	p    *big.Int
	size int
}

// NewPrimeField returns GF(p). p must be an odd prime.
func NewPrimeField(name string, p *big.Int) *PrimeField {
	return &PrimeField{
		name: name,
		p:    new(big.Int).Set(p),
		size: (p.BitLen() + 7) / 8,
	}
}

func (f *PrimeField) Name() string      { return f.name }
func (f *PrimeField) Modulus() *big.Int { return new(big.Int).Set(f.p) }
func (f *PrimeField) Zero() Element     { return &primeElement{v: new(big.Int), f: f} }
func (f *PrimeField) One() Element      { return &primeElement{v: big.NewInt(1), f: f} }

func (f *PrimeField) NewElement(n *big.Int) Element {
	return &primeElement{v: new(big.Int).Mod(n, f.p), f: f}
}

// NewElementInt is a shorthand for small constants.
func (f *PrimeField) NewElementInt(n int64) Element {
	return f.NewElement(big.NewInt(n))
}

// primeElement implements Element
type primeElement struct {
	v *big.Int
	f *PrimeField
}

func (e *primeElement) other(o Element) *primeElement {
	oe, ok := o.(*primeElement)
	if !ok || oe.f.p.Cmp(e.f.p) != 0 {
		panic("type mismatch")
	}
	return oe
}

func (e *primeElement) wrap(v *big.Int) Element {
	return &primeElement{v: v.Mod(v, e.f.p), f: e.f}
}

func (e *primeElement) Add(o Element) Element {
	return e.wrap(new(big.Int).Add(e.v, e.other(o).v))
}

func (e *primeElement) Sub(o Element) Element {
	return e.wrap(new(big.Int).Sub(e.v, e.other(o).v))
}

func (e *primeElement) Mul(o Element) Element {
	return e.wrap(new(big.Int).Mul(e.v, e.other(o).v))
}

func (e *primeElement) Square() Element {
	return e.wrap(new(big.Int).Mul(e.v, e.v))
}

func (e *primeElement) Neg() Element {
	return e.wrap(new(big.Int).Neg(e.v))
}

func (e *primeElement) Invert() Element {
	if e.v.Sign() == 0 {
		return e.f.Zero()
	}
	return e.wrap(new(big.Int).ModInverse(e.v, e.f.p))
}

func (e *primeElement) IsZero() bool {
	return e.v.Sign() == 0
}

func (e *primeElement) Equal(o Element) bool {
	return e.v.Cmp(e.other(o).v) == 0
}

func (e *primeElement) Bytes() []byte {
	return e.v.FillBytes(make([]byte, e.f.size))
}

func (e *primeElement) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

func (e *primeElement) String() string {
	return e.v.String()
}

// NewToy97 returns y^2 = x^3 + 2x + 3 over GF(97). The curve has 100 points;
// the base point (3, 6) has order 5 and (30, 0), (68, 0), (96, 0) are its 2-torsion points.
func NewToy97() *Weierstrass {
	f := NewPrimeField("GF(97)", big.NewInt(97))
	return NewWeierstrass(
		"toy97",
		f,
		f.NewElementInt(2),
		f.NewElementInt(3),
		f.NewElementInt(3),
		f.NewElementInt(6),
		big.NewInt(5),
	)
}

// MustPoint builds an affine point from integer coordinates and panics if it is not on c.
func MustPoint(c Curve, x, y int64) Point {
	p := NewPoint(c.Field().NewElement(big.NewInt(x)), c.Field().NewElement(big.NewInt(y)))
	if !c.IsOnCurve(p) {
		panic(fmt.Sprintf("point (%d, %d) is not on %s", x, y, c.Name()))
	}
	return p
}
