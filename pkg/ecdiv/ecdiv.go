// Package ecdiv is the public entry point for building elliptic-curve divisors
// and exporting them as fixed-width witnesses for a proof system.
package ecdiv

import (
	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/internal/crypto/divisor"
)

type (
	// Curve is a short-Weierstrass curve with its group law.
	Curve = curves.Curve
	// Point is an affine curve point or the identity.
	Point = curves.Point
	// Element is a base-field element.
	Element = curves.Element
	// Divisor is the function a(x) + y*b(x) vanishing at a point multiset.
	Divisor = divisor.Divisor
	// Option configures BuildDivisor.
	Option = divisor.Option
)

// Common errors returned by the library. Test with errors.Is.
var (
	ErrInvalidInput       = divisor.ErrInvalidInput
	ErrDegenerateGeometry = divisor.ErrDegenerateGeometry
	ErrDivision           = divisor.ErrDivision
	ErrDegreeOverflow     = divisor.ErrDegreeOverflow
	ErrMismatch           = divisor.ErrMismatch
	ErrUnknownCurve       = curves.ErrUnknownCurve
)

// Options for BuildDivisor.
var (
	WithLogger            = divisor.WithLogger
	WithWorkers           = divisor.WithWorkers
	WithParallelThreshold = divisor.WithParallelThreshold
	WithoutValidation     = divisor.WithoutValidation
)

// Secp256k1 returns the secp256k1 curve.
func Secp256k1() Curve { return secp }

// Ed25519 returns Curve25519 in short-Weierstrass form (Wei25519). Use
// FromEdwards to map Ed25519 points onto it.
func Ed25519() Curve { return ed }

var (
	secp = curves.NewSecp256k1()
	ed   = curves.NewEd25519()
)

// FromEdwards maps an Ed25519 point onto the Ed25519 curve returned here.
func FromEdwards(p *edwards25519.Point) Point {
	return ed.FromEdwards(p)
}

// FromPublicKey returns the affine point of a secp256k1 public key.
func FromPublicKey(pub *secp256k1.PublicKey) Point {
	f := secp.Field()
	return curves.NewPoint(f.NewElement(pub.X()), f.NewElement(pub.Y()))
}

// CurveByName looks up "secp256k1", "ed25519" (alias "wei25519") or "toy97".
func CurveByName(name string) (Curve, error) {
	return curves.ByName(name)
}

// Identity returns the point at infinity.
func Identity() Point { return curves.Identity() }

// BuildDivisor returns the divisor of points, which must sum to the identity.
func BuildDivisor(curve Curve, points []Point, opts ...Option) (*Divisor, error) {
	return divisor.Build(curve, points, opts...)
}

// Evaluate computes a(x) + y*b(x).
func Evaluate(d *Divisor, x, y Element) Element {
	return divisor.Evaluate(d, x, y)
}

// ToFixedWidth exports the coefficients of d zero-padded to the widths used for
// any multiset of at most maxPoints points.
func ToFixedWidth(d *Divisor, maxPoints int) (a, b []Element, err error) {
	return divisor.ToFixedWidth(d, maxPoints)
}

// DegreeBounds returns the maximum degrees of a and b for n points.
func DegreeBounds(n int) (aMax, bMax int) {
	return divisor.DegreeBounds(n)
}
