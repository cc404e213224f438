package ecdiv

import (
	"encoding/binary"
	"math/big"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// SampleMultiset derives n points summing to the identity from seed: n-1
// multiples of the generator with scalars blake2b(seed || i) mod the order,
// closed by the negated sum. The same seed always yields the same points.
func SampleMultiset(curve Curve, n int, seed []byte) ([]Point, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 2 points, got %d", n)
	}

	order := curve.Order()
	points := make([]Point, 0, n)
	sum := Identity()

	buf := make([]byte, len(seed)+8)
	copy(buf, seed)
	for i := 0; i < n-1; i++ {
		binary.BigEndian.PutUint64(buf[len(seed):], uint64(i))
		digest := blake2b.Sum512(buf)

		k := new(big.Int).SetBytes(digest[:])
		k.Mod(k, order)
		if k.Sign() == 0 {
			k.SetInt64(1)
		}

		p := curve.ScalarBaseMult(k)
		points = append(points, p)
		sum = curve.Add(sum, p)
	}
	return append(points, curve.Neg(sum)), nil
}
