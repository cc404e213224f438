package ecdiv

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/commitment"
	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
)

// Commitment is a salted hash commitment to a witness.
type Commitment = commitment.Commitment

// Witness is the serializable form of a divisor: hex-encoded big-endian
// coefficients, lowest degree first, padded to a fixed width.
type Witness struct {
	Curve     string   `json:"curve"`
	Points    int      `json:"points"`
	MaxPoints int      `json:"maxPoints"`
	A         []string `json:"a"`
	B         []string `json:"b"`
}

// NewWitness exports d padded for maxPoints points. maxPoints <= 0 uses the
// number of points d was built from.
func NewWitness(d *Divisor, maxPoints int) (*Witness, error) {
	if maxPoints <= 0 {
		maxPoints = d.Size()
	}
	a, b, err := ToFixedWidth(d, maxPoints)
	if err != nil {
		return nil, errors.Wrap(err, "export witness")
	}
	return &Witness{
		Curve:     d.Curve().Name(),
		Points:    d.Size(),
		MaxPoints: maxPoints,
		A:         encode(a),
		B:         encode(b),
	}, nil
}

// Commit returns a fresh commitment to the witness.
func (w *Witness) Commit() (*Commitment, error) {
	parts, err := w.parts()
	if err != nil {
		return nil, err
	}
	return commitment.New(parts...)
}

// Opens reports whether c is a commitment to this witness.
func (w *Witness) Opens(c *Commitment) bool {
	if c == nil {
		return false
	}
	parts, err := w.parts()
	if err != nil {
		return false
	}
	return commitment.Verify(c.C, c.D, parts...)
}

// parts serializes the witness: curve name, width header, then the raw
// coefficients of a followed by b.
func (w *Witness) parts() ([][]byte, error) {
	header := make([]byte, 24)
	binary.BigEndian.PutUint64(header[0:], uint64(w.MaxPoints))
	binary.BigEndian.PutUint64(header[8:], uint64(len(w.A)))
	binary.BigEndian.PutUint64(header[16:], uint64(len(w.B)))

	parts := make([][]byte, 0, 2+len(w.A)+len(w.B))
	parts = append(parts, []byte(w.Curve), header)
	for _, c := range append(append([]string(nil), w.A...), w.B...) {
		raw, err := hex.DecodeString(c)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "bad coefficient %q", c)
		}
		parts = append(parts, raw)
	}
	return parts, nil
}

func encode(coeffs []Element) []string {
	out := make([]string, len(coeffs))
	for i, c := range coeffs {
		out[i] = EncodeElement(c)
	}
	return out
}

// EncodeElement returns the big-endian hex encoding of e.
func EncodeElement(e Element) string {
	return hex.EncodeToString(e.Bytes())
}

// EncodePoint returns the hex coordinates of p, or two empty strings for the identity.
func EncodePoint(p Point) (x, y string) {
	if p.IsIdentity() {
		return "", ""
	}
	return EncodeElement(p.X), EncodeElement(p.Y)
}

// DecodePoint parses big-endian hex coordinates into a point on curve. Two
// empty strings decode to the identity.
func DecodePoint(curve Curve, x, y string) (Point, error) {
	if x == "" && y == "" {
		return Identity(), nil
	}
	xe, err := DecodeElement(curve, x)
	if err != nil {
		return Point{}, errors.Wrap(err, "x")
	}
	ye, err := DecodeElement(curve, y)
	if err != nil {
		return Point{}, errors.Wrap(err, "y")
	}
	p := curves.NewPoint(xe, ye)
	if !curve.IsOnCurve(p) {
		return Point{}, errors.Wrapf(ErrInvalidInput, "(%s, %s) is not on %s", x, y, curve.Name())
	}
	return p, nil
}

// DecodeElement parses a big-endian hex field element of curve.
func DecodeElement(curve Curve, s string) (Element, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "bad hex %q", s)
	}
	n := new(big.Int).SetBytes(raw)
	if n.Cmp(curve.Field().Modulus()) >= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "%s is not reduced", s)
	}
	return curve.Field().NewElement(n), nil
}
