package curves

import (
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Field(t *testing.T) {
	f := ed25519Field{}

	val := big.NewInt(12345)
	x := f.NewElement(val)
	assert.Equal(t, val, x.BigInt())
	assert.Equal(t, "12345", x.String())

	assert.True(t, x.Mul(x.Invert()).Equal(f.One()))
	assert.True(t, f.Zero().IsZero())
	assert.True(t, f.NewElement(p25519).IsZero())
	assert.Equal(t, big.NewInt(24690), x.Add(x).BigInt())

	neg := f.NewElement(big.NewInt(-1))
	assert.Equal(t, new(big.Int).Sub(p25519, big.NewInt(1)), neg.BigInt())
}

func TestEd25519Point(t *testing.T) {
	curve := NewEd25519()
	g := curve.Generator()

	require.True(t, curve.IsOnCurve(g))

	// The Edwards -> Wei25519 map is a homomorphism, so the affine group law on
	// Wei25519 must agree with edwards25519.
	p2 := curve.ScalarBaseMult(big.NewInt(2))
	assert.True(t, curve.Equal(p2, curve.Add(g, g)))

	k1, err := curve.NewScalar()
	require.NoError(t, err)
	k2, err := curve.NewScalar()
	require.NoError(t, err)

	p := curve.ScalarBaseMult(k1)
	q := curve.ScalarBaseMult(k2)
	require.True(t, curve.IsOnCurve(p))
	assert.True(t, curve.Equal(curve.Add(p, q), curve.ScalarBaseMult(new(big.Int).Add(k1, k2))))
	assert.True(t, curve.Equal(curve.ScalarMult(g, k1), p))

	assert.True(t, curve.ScalarBaseMult(curve.Order()).IsIdentity())
	assert.True(t, curve.FromEdwards(edwards25519.NewIdentityPoint()).IsIdentity())
}
