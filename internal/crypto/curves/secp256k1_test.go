package curves

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1Field(t *testing.T) {
	curve := NewSecp256k1()
	f := curve.Field()
	p := secp256k1.S256().Params().P

	x := f.NewElement(big.NewInt(12345))
	assert.Equal(t, big.NewInt(12345), x.BigInt())
	assert.True(t, x.Mul(x.Invert()).Equal(f.One()))
	assert.True(t, x.Sub(x).IsZero())
	assert.True(t, x.Add(x.Neg()).IsZero())

	// p - 1 + 2 wraps around to 1
	pMinus1 := f.NewElement(new(big.Int).Sub(p, big.NewInt(1)))
	assert.True(t, pMinus1.Add(f.NewElement(big.NewInt(2))).Equal(f.One()))
	assert.Len(t, x.Bytes(), 32)
}

func TestSecp256k1GroupLaw(t *testing.T) {
	curve := NewSecp256k1()
	g := curve.Generator()
	params := secp256k1.S256().Params()

	require.True(t, curve.IsOnCurve(g))
	assert.Equal(t, params.Gx, g.X.BigInt())
	assert.Equal(t, params.Gy, g.Y.BigInt())
	assert.True(t, curve.A().IsZero())

	t.Run("matches affine formulas", func(t *testing.T) {
		k1, err := curve.NewScalar()
		require.NoError(t, err)
		k2, err := curve.NewScalar()
		require.NoError(t, err)

		p := curve.ScalarBaseMult(k1)
		q := curve.ScalarBaseMult(k2)
		require.True(t, curve.IsOnCurve(p))

		assert.True(t, curve.Equal(curve.Add(p, q), curve.Weierstrass.Add(p, q)))
		assert.True(t, curve.Equal(curve.Double(p), curve.Weierstrass.Double(p)))
		assert.True(t, curve.Equal(curve.Add(p, q), curve.ScalarBaseMult(new(big.Int).Add(k1, k2))))
		assert.True(t, curve.Equal(curve.ScalarMult(g, k1), p))
	})

	t.Run("identity", func(t *testing.T) {
		assert.True(t, curve.ScalarBaseMult(params.N).IsIdentity())
		assert.True(t, curve.ScalarBaseMult(big.NewInt(0)).IsIdentity())
		assert.True(t, curve.ScalarMult(g, params.N).IsIdentity())
		assert.True(t, curve.Equal(curve.Add(curve.ScalarBaseMult(params.N), g), g))
		assert.True(t, curve.Add(g, curve.Neg(g)).IsIdentity())
		assert.True(t, curve.Equal(curve.Add(Identity(), g), g))
		assert.True(t, curve.Double(Identity()).IsIdentity())
	})
}
