package divisor

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
)

// toyPoints lists every point of the toy curve, identity first.
func toyPoints(curve curves.Curve) []curves.Point {
	f := curve.Field()
	points := []curves.Point{curves.Identity()}
	for x := int64(0); x < 97; x++ {
		for y := int64(0); y < 97; y++ {
			p := curves.NewPoint(f.NewElement(big.NewInt(x)), f.NewElement(big.NewInt(y)))
			if curve.IsOnCurve(p) {
				points = append(points, p)
			}
		}
	}
	return points
}

func FuzzBuild(f *testing.F) {
	// Seed corpus
	f.Add([]byte{})
	f.Add([]byte{1})
	f.Add([]byte{5, 5, 5})
	f.Add([]byte{0, 0, 7, 0, 9})
	f.Add([]byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 99, 3})

	curve := curves.NewToy97()
	all := toyPoints(curve)
	if len(all) != 100 {
		f.Fatalf("toy curve has %d points, want 100", len(all))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		if len(data) > 64 {
			data = data[:64]
		}
		// each byte picks a point; the negated sum closes the multiset
		points := make([]curves.Point, 0, len(data)+1)
		for _, b := range data {
			points = append(points, all[int(b)%len(all)])
		}
		points = append(points, curve.Neg(curves.Sum(curve, points)))

		d, err := Build(curve, points)
		if err != nil {
			if errors.HasAssertionFailure(err) {
				t.Fatalf("engine defect for %v: %+v", points, err)
			}
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Fatalf("unexpected error for %v: %v", points, err)
			}
			return
		}
		if err := d.Check(points); err != nil {
			t.Fatalf("divisor of %v: %v", points, err)
		}
	})
}
