// Package commitment implements salted hash commitments to witness data.
package commitment

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"hash"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// SaltSize is the length of the decommitment value.
const SaltSize = 32

// Commitment is a hiding, binding commitment C = BLAKE2b-256_D(parts) keyed
// with the random salt D.
type Commitment struct {
	C []byte // commitment value
	D []byte // decommitment value (salt)
}

// New commits to parts under a fresh random salt.
func New(parts ...[]byte) (*Commitment, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "read salt")
	}
	c, err := digest(salt, parts)
	if err != nil {
		return nil, err
	}
	return &Commitment{C: c, D: salt}, nil
}

// Verify checks that c opens to parts under the salt d.
func Verify(c, d []byte, parts ...[]byte) bool {
	if len(c) != blake2b.Size256 || len(d) != SaltSize {
		return false
	}
	computed, err := digest(d, parts)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(computed, c) == 1
}

// digest hashes the parts, each prefixed with its length so that no two part
// lists share an encoding.
func digest(salt []byte, parts [][]byte) ([]byte, error) {
	h, err := blake2b.New256(salt)
	if err != nil {
		return nil, errors.Wrap(err, "init blake2b")
	}
	writeUint(h, uint64(len(parts)))
	for _, p := range parts {
		writeUint(h, uint64(len(p)))
		h.Write(p)
	}
	return h.Sum(nil), nil
}

func writeUint(h hash.Hash, n uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	h.Write(buf[:])
}
