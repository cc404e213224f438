package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secpField is GF(p) for secp256k1, backed by secp256k1.FieldVal.
type secpField struct {
	p *big.Int
}

func (f *secpField) Name() string      { return "secp256k1.Fp" }
func (f *secpField) Modulus() *big.Int { return new(big.Int).Set(f.p) }
func (f *secpField) Zero() Element     { return &secpElement{} }

func (f *secpField) One() Element {
	e := &secpElement{}
	e.v.SetInt(1)
	return e
}

func (f *secpField) NewElement(n *big.Int) Element {
	var buf [32]byte
	new(big.Int).Mod(n, f.p).FillBytes(buf[:])

	e := &secpElement{}
	e.v.SetBytes(&buf)
	e.v.Normalize()
	return e
}

// secpElement implements Element. The wrapped value is always normalized.
type secpElement struct {
	v secp256k1.FieldVal
}

func secpOther(o Element) *secpElement {
	oe, ok := o.(*secpElement)
	if !ok {
		panic("type mismatch")
	}
	return oe
}

func secpResult(v *secp256k1.FieldVal) Element {
	e := &secpElement{}
	e.v.Set(v).Normalize()
	return e
}

func (e *secpElement) Add(o Element) Element {
	var r secp256k1.FieldVal
	r.Add2(&e.v, &secpOther(o).v)
	return secpResult(&r)
}

func (e *secpElement) Sub(o Element) Element {
	var r secp256k1.FieldVal
	r.NegateVal(&secpOther(o).v, 1)
	r.Add(&e.v)
	return secpResult(&r)
}

func (e *secpElement) Mul(o Element) Element {
	var r secp256k1.FieldVal
	r.Mul2(&e.v, &secpOther(o).v)
	return secpResult(&r)
}

func (e *secpElement) Square() Element {
	var r secp256k1.FieldVal
	r.SquareVal(&e.v)
	return secpResult(&r)
}

func (e *secpElement) Neg() Element {
	var r secp256k1.FieldVal
	r.NegateVal(&e.v, 1)
	return secpResult(&r)
}

func (e *secpElement) Invert() Element {
	var r secp256k1.FieldVal
	r.Set(&e.v).Inverse()
	return secpResult(&r)
}

func (e *secpElement) IsZero() bool {
	return e.v.IsZero()
}

func (e *secpElement) Equal(o Element) bool {
	return e.v.Equals(&secpOther(o).v)
}

func (e *secpElement) Bytes() []byte {
	b := e.v.Bytes()
	return b[:]
}

func (e *secpElement) BigInt() *big.Int {
	return new(big.Int).SetBytes(e.Bytes())
}

func (e *secpElement) String() string {
	return e.v.String()
}

// Secp256k1 is y^2 = x^3 + 7. Field arithmetic and the group law are delegated to
// github.com/decred/dcrd/dcrec/secp256k1/v4.
type Secp256k1 struct {
	*Weierstrass
}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() *Secp256k1 {
	params := secp256k1.S256().Params()
	f := &secpField{p: params.P}
	return &Secp256k1{
		Weierstrass: NewWeierstrass(
			"secp256k1",
			f,
			f.Zero(),
			f.NewElement(params.B),
			f.NewElement(params.Gx),
			f.NewElement(params.Gy),
			params.N,
		),
	}
}

func (c *Secp256k1) Add(p, q Point) Point {
	var r secp256k1.JacobianPoint
	jp, jq := toJacobian(p), toJacobian(q)
	secp256k1.AddNonConst(&jp, &jq, &r)
	return fromJacobian(&r)
}

func (c *Secp256k1) Double(p Point) Point {
	var r secp256k1.JacobianPoint
	jp := toJacobian(p)
	secp256k1.DoubleNonConst(&jp, &r)
	return fromJacobian(&r)
}

func (c *Secp256k1) ScalarMult(p Point, k *big.Int) Point {
	var r secp256k1.JacobianPoint
	jp := toJacobian(p)
	secp256k1.ScalarMultNonConst(c.modN(k), &jp, &r)
	return fromJacobian(&r)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(c.modN(k), &r)
	return fromJacobian(&r)
}

func (c *Secp256k1) modN(k *big.Int) *secp256k1.ModNScalar {
	var buf [32]byte
	new(big.Int).Mod(k, c.Weierstrass.order).FillBytes(buf[:])

	s := new(secp256k1.ModNScalar)
	s.SetBytes(&buf)
	return s
}

func toJacobian(p Point) secp256k1.JacobianPoint {
	if p.IsIdentity() {
		// Z = 0 encodes the point at infinity.
		return secp256k1.JacobianPoint{}
	}
	var one secp256k1.FieldVal
	one.SetInt(1)
	return secp256k1.MakeJacobianPoint(&secpOther(p.X).v, &secpOther(p.Y).v, &one)
}

func fromJacobian(j *secp256k1.JacobianPoint) Point {
	// decred encodes infinity either as Z = 0 or as X = Y = 0.
	j.X.Normalize()
	j.Y.Normalize()
	j.Z.Normalize()
	if j.Z.IsZero() || (j.X.IsZero() && j.Y.IsZero()) {
		return Identity()
	}
	j.ToAffine()
	return NewPoint(secpResult(&j.X), secpResult(&j.Y))
}
