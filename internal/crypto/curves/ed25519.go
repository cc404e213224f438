package curves

import (
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// Wei25519 constants for Curve25519 (Montgomery A = 486662) in short-Weierstrass form
// y^2 = x^3 + a*x + b, where a = (3 - A^2)/3 and b = (2A^3 - 9A)/27.
const (
	wei25519A       = "19298681539552699237261830834781317975544997444273427339909597334573241639236"
	wei25519B       = "55751746669818908907645289078257140818241103727901012315294400837956729358436"
	wei25519AOver3  = "19298681539552699237261830834781317975544997444273427339909597334652188435537"
	wei25519SqrtM2A = "6853475219497561581579357271197624642482790079785650197046958215289687604742" // sqrt(-(A+2))
	ed25519Order    = "7237005577332262213973186563042994240857116359379907606001950938285454250989"
)

var p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// ed25519Field is GF(2^255 - 19), backed by filippo.io/edwards25519/field.
type ed25519Field struct{}

func (ed25519Field) Name() string      { return "GF(2^255-19)" }
func (ed25519Field) Modulus() *big.Int { return new(big.Int).Set(p25519) }
func (ed25519Field) Zero() Element     { return &ed25519Element{} }

func (ed25519Field) One() Element {
	e := &ed25519Element{}
	e.v.One()
	return e
}

func (ed25519Field) NewElement(n *big.Int) Element {
	// edwards25519 uses little-endian, big.Int.Bytes() is big-endian.
	var buf [32]byte
	new(big.Int).Mod(n, p25519).FillBytes(buf[:])
	reverse(buf[:])

	e := &ed25519Element{}
	if _, err := e.v.SetBytes(buf[:]); err != nil {
		panic(err)
	}
	return e
}

// ed25519Element implements Element
type ed25519Element struct {
	v field.Element
}

func edOther(o Element) *ed25519Element {
	oe, ok := o.(*ed25519Element)
	if !ok {
		panic("type mismatch")
	}
	return oe
}

func (e *ed25519Element) Add(o Element) Element {
	r := &ed25519Element{}
	r.v.Add(&e.v, &edOther(o).v)
	return r
}

func (e *ed25519Element) Sub(o Element) Element {
	r := &ed25519Element{}
	r.v.Subtract(&e.v, &edOther(o).v)
	return r
}

func (e *ed25519Element) Mul(o Element) Element {
	r := &ed25519Element{}
	r.v.Multiply(&e.v, &edOther(o).v)
	return r
}

func (e *ed25519Element) Square() Element {
	r := &ed25519Element{}
	r.v.Square(&e.v)
	return r
}

func (e *ed25519Element) Neg() Element {
	r := &ed25519Element{}
	r.v.Negate(&e.v)
	return r
}

func (e *ed25519Element) Invert() Element {
	r := &ed25519Element{}
	r.v.Invert(&e.v)
	return r
}

func (e *ed25519Element) IsZero() bool {
	var zero field.Element
	return e.v.Equal(zero.Zero()) == 1
}

func (e *ed25519Element) Equal(o Element) bool {
	return e.v.Equal(&edOther(o).v) == 1
}

func (e *ed25519Element) Bytes() []byte {
	b := e.v.Bytes()
	reverse(b)
	return b
}

func (e *ed25519Element) BigInt() *big.Int {
	return new(big.Int).SetBytes(e.Bytes())
}

func (e *ed25519Element) String() string {
	return e.BigInt().String()
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Ed25519 is the prime-order subgroup of Ed25519 expressed on the isomorphic
// short-Weierstrass curve Wei25519. Points are produced on edwards25519.Point and
// mapped through Curve25519; the affine group law runs on Wei25519 directly.
type Ed25519 struct {
	*Weierstrass
	aOver3  Element
	sqrtM2A Element
}

// NewEd25519 returns the Wei25519 model of Ed25519.
func NewEd25519() *Ed25519 {
	f := ed25519Field{}
	dec := func(s string) Element {
		n, _ := new(big.Int).SetString(s, 10)
		return f.NewElement(n)
	}
	order, _ := new(big.Int).SetString(ed25519Order, 10)

	c := &Ed25519{
		aOver3:  dec(wei25519AOver3),
		sqrtM2A: dec(wei25519SqrtM2A),
	}
	g := c.FromEdwards(edwards25519.NewGeneratorPoint())
	c.Weierstrass = NewWeierstrass("ed25519", f, dec(wei25519A), dec(wei25519B), g.X, g.Y, order)
	return c
}

// FromEdwards maps an Edwards point to Wei25519.
//
//	u = (1 + y) / (1 - y),  v = sqrt(-(A+2)) * u / x,  (X, Y) = (u + A/3, v)
func (c *Ed25519) FromEdwards(p *edwards25519.Point) Point {
	X, Y, Z, _ := p.ExtendedCoordinates()

	var zInv, x, y field.Element
	zInv.Invert(Z)
	x.Multiply(X, &zInv)
	y.Multiply(Y, &zInv)

	var one, num, den field.Element
	one.One()
	den.Subtract(&one, &y)
	if den.Equal(new(field.Element).Zero()) == 1 {
		// y = 1, x = 0
		return Identity()
	}
	num.Add(&one, &y)

	u := &ed25519Element{}
	u.v.Multiply(&num, den.Invert(&den))

	v := &ed25519Element{}
	var xInv field.Element
	v.v.Multiply(&edOther(c.sqrtM2A).v, &u.v)
	v.v.Multiply(&v.v, xInv.Invert(&x)) // x = 0 only for (0, -1), where u = 0 as well

	return NewPoint(u.Add(c.aOver3), v)
}

func (c *Ed25519) ScalarBaseMult(k *big.Int) Point {
	var buf [32]byte
	new(big.Int).Mod(k, c.Weierstrass.order).FillBytes(buf[:])
	reverse(buf[:])

	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return c.FromEdwards(edwards25519.NewIdentityPoint().ScalarBaseMult(s))
}
