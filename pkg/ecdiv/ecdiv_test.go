package ecdiv

import (
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDivisor(t *testing.T) {
	for _, name := range []string{"secp256k1", "ed25519", "toy97"} {
		t.Run(name, func(t *testing.T) {
			curve, err := CurveByName(name)
			require.NoError(t, err)

			points, err := SampleMultiset(curve, 7, []byte("ecdiv test"))
			require.NoError(t, err)

			d, err := BuildDivisor(curve, points, WithWorkers(2), WithParallelThreshold(1))
			require.NoError(t, err)
			for _, p := range points {
				assert.True(t, Evaluate(d, p.X, p.Y).IsZero())
			}
			require.NoError(t, d.Check(points))
		})
	}

	_, err := CurveByName("p256")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
}

func TestSampleMultiset(t *testing.T) {
	curve := Secp256k1()

	a, err := SampleMultiset(curve, 5, []byte("seed"))
	require.NoError(t, err)
	b, err := SampleMultiset(curve, 5, []byte("seed"))
	require.NoError(t, err)
	c, err := SampleMultiset(curve, 5, []byte("other seed"))
	require.NoError(t, err)

	require.Len(t, a, 5)
	for i := range a {
		assert.True(t, curve.Equal(a[i], b[i]))
	}
	assert.False(t, curve.Equal(a[0], c[0]))

	_, err = SampleMultiset(curve, 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestWitness(t *testing.T) {
	curve := Ed25519()
	points, err := SampleMultiset(curve, 6, []byte("witness"))
	require.NoError(t, err)

	d, err := BuildDivisor(curve, points)
	require.NoError(t, err)

	w, err := NewWitness(d, 16)
	require.NoError(t, err)
	aMax, bMax := DegreeBounds(16)
	assert.Len(t, w.A, aMax+1)
	assert.Len(t, w.B, bMax+1)
	assert.Equal(t, 6, w.Points)
	assert.Equal(t, curve.Name(), w.Curve)

	for _, c := range append(w.A, w.B...) {
		raw, err := hex.DecodeString(c)
		require.NoError(t, err)
		assert.Len(t, raw, 32)
	}

	w, err = NewWitness(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, w.MaxPoints)

	_, err = NewWitness(d, 3)
	assert.True(t, errors.Is(err, ErrDegreeOverflow))
}

func TestWitnessCommitment(t *testing.T) {
	curve := Secp256k1()
	points, err := SampleMultiset(curve, 5, []byte("commit"))
	require.NoError(t, err)
	d, err := BuildDivisor(curve, points)
	require.NoError(t, err)

	w, err := NewWitness(d.Normalize(), 8)
	require.NoError(t, err)

	c, err := w.Commit()
	require.NoError(t, err)
	assert.True(t, w.Opens(c))
	assert.False(t, w.Opens(nil))

	// same coefficients, different padding
	narrow, err := NewWitness(d.Normalize(), 5)
	require.NoError(t, err)
	assert.False(t, narrow.Opens(c))

	tampered := *w
	tampered.A = append([]string(nil), w.A...)
	tampered.A[0] = w.B[0]
	assert.False(t, tampered.Opens(c))
}

func TestFromReferencePoints(t *testing.T) {
	t.Run("edwards25519", func(t *testing.T) {
		curve := Ed25519()
		p := FromEdwards(edwards25519.NewGeneratorPoint())
		assert.True(t, curve.IsOnCurve(p))
		assert.True(t, curve.Equal(curve.Generator(), p))

		// one shared instance backs the constructor and the map
		assert.Same(t, curve, Ed25519())
		q := FromEdwards(new(edwards25519.Point).Add(edwards25519.NewGeneratorPoint(), edwards25519.NewGeneratorPoint()))
		assert.True(t, curve.Equal(curve.Double(p), q))
	})

	t.Run("secp256k1", func(t *testing.T) {
		curve := Secp256k1()
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)

		p := FromPublicKey(priv.PubKey())
		require.True(t, curve.IsOnCurve(p))

		d, err := BuildDivisor(curve, []Point{p, curve.Neg(p)})
		require.NoError(t, err)
		assert.True(t, d.IsZeroAt(p))
	})
}

func TestPointEncoding(t *testing.T) {
	curve := Secp256k1()
	points, err := SampleMultiset(curve, 3, []byte("encoding"))
	require.NoError(t, err)

	for _, p := range append(points, Identity()) {
		x, y := EncodePoint(p)
		q, err := DecodePoint(curve, x, y)
		require.NoError(t, err)
		assert.True(t, curve.Equal(p, q))
	}

	x, _ := EncodePoint(points[0])
	_, err = DecodePoint(curve, x, x)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = DecodePoint(curve, "zz", "00")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
