package e2e

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/pkg/ecdiv"
)

// TestToyCurve runs the worked examples over y^2 = x^3 + 2x + 3 mod 97.
func TestToyCurve(t *testing.T) {
	curve, err := ecdiv.CurveByName("toy97")
	require.NoError(t, err)
	g := curve.Generator()
	other := curves.MustPoint(curve, 1, 43)

	tests := []struct {
		name   string
		points []ecdiv.Point
		err    error
	}{
		{"G and -G", []ecdiv.Point{g, curve.Neg(g)}, nil},
		{"G, G and -2G", []ecdiv.Point{g, g, curves.MustPoint(curve, 80, 87)}, nil},
		{"three collinear points", []ecdiv.Point{
			curves.MustPoint(curve, 0, 10), g, curves.MustPoint(curve, 85, 26),
		}, nil},
		{"five points", []ecdiv.Point{
			curves.MustPoint(curve, 0, 10),
			curves.MustPoint(curve, 1, 43),
			curves.MustPoint(curve, 4, 47),
			curves.MustPoint(curve, 10, 21),
			curves.MustPoint(curve, 12, 94),
		}, nil},
		{"empty", nil, ecdiv.ErrInvalidInput},
		{"single point", []ecdiv.Point{g}, ecdiv.ErrInvalidInput},
		{"doubled 2-torsion point", []ecdiv.Point{
			curves.MustPoint(curve, 30, 0), curves.MustPoint(curve, 30, 0),
		}, ecdiv.ErrDegenerateGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ecdiv.BuildDivisor(curve, tt.points)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)

			for _, p := range tt.points {
				assert.True(t, ecdiv.Evaluate(d, p.X, p.Y).IsZero(), "no zero at %s", p)
			}
			require.NoError(t, d.Check(tt.points))

			aMax, bMax := ecdiv.DegreeBounds(len(tt.points))
			assert.LessOrEqual(t, d.A.Degree(), aMax)
			assert.LessOrEqual(t, d.B.Degree(), bMax)

			if !containsX(tt.points, other) {
				assert.False(t, d.IsZeroAt(other))
			}
		})
	}
}

func containsX(points []ecdiv.Point, q ecdiv.Point) bool {
	for _, p := range points {
		if !p.IsIdentity() && p.X.Equal(q.X) {
			return true
		}
	}
	return false
}

// TestWitnessPipeline builds divisors for random multisets on the production
// curves and exports them at a common width, as a proof system would.
func TestWitnessPipeline(t *testing.T) {
	const maxPoints = 33

	for _, curve := range []ecdiv.Curve{ecdiv.Secp256k1(), ecdiv.Ed25519()} {
		curve := curve
		t.Run(curve.Name(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			aMax, bMax := ecdiv.DegreeBounds(maxPoints)

			for _, n := range []int{2, 7, 20, maxPoints} {
				points, err := ecdiv.SampleMultiset(curve, n, []byte{byte(n)})
				require.NoError(t, err)

				d, err := ecdiv.BuildDivisor(curve, points, ecdiv.WithWorkers(4), ecdiv.WithParallelThreshold(2))
				require.NoError(t, err)
				require.NoError(t, d.Check(points))

				w, err := ecdiv.NewWitness(d.Normalize(), maxPoints)
				require.NoError(t, err)
				assert.Len(t, w.A, aMax+1)
				assert.Len(t, w.B, bMax+1)

				// order independence
				rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
				d2, err := ecdiv.BuildDivisor(curve, points)
				require.NoError(t, err)

				w2, err := ecdiv.NewWitness(d2.Normalize(), maxPoints)
				require.NoError(t, err)
				assert.Equal(t, w.A, w2.A, "n = %d", n)
				assert.Equal(t, w.B, w2.B, "n = %d", n)
			}
		})
	}
}
