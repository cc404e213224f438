package polynomial

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
)

// ErrDivisionByZero is returned by DivRem when the divisor is the zero polynomial.
var ErrDivisionByZero = errors.New("polynomial division by zero")

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the base field of a curve.
//
// Coefficients are kept in normal form: the highest coefficient is never zero,
// and the zero polynomial has no coefficients. Polynomials are never mutated
// after construction.
type Polynomial struct {
	Coefficients []curves.Element
	Field        curves.Field
}

// New returns the polynomial with the given ascending coefficients.
func New(field curves.Field, coeffs ...curves.Element) *Polynomial {
	c := make([]curves.Element, len(coeffs))
	copy(c, coeffs)
	return normalize(field, c)
}

// Zero returns the zero polynomial.
func Zero(field curves.Field) *Polynomial {
	return &Polynomial{Field: field}
}

// Constant returns the degree-0 polynomial c.
func Constant(field curves.Field, c curves.Element) *Polynomial {
	return New(field, c)
}

// Linear returns x + c.
func Linear(field curves.Field, c curves.Element) *Polynomial {
	return New(field, c, field.One())
}

// FromRoots returns the monic polynomial (x - r_0)(x - r_1)...(x - r_k).
func FromRoots(field curves.Field, roots ...curves.Element) *Polynomial {
	p := Constant(field, field.One())
	for _, r := range roots {
		p = p.Mul(Linear(field, r.Neg()))
	}
	return p
}

func normalize(field curves.Field, c []curves.Element) *Polynomial {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	return &Polynomial{Coefficients: c[:n], Field: field}
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

func (p *Polynomial) IsZero() bool {
	return len(p.Coefficients) == 0
}

// Coefficient returns the coefficient of x^i.
func (p *Polynomial) Coefficient(i int) curves.Element {
	if i < 0 || i >= len(p.Coefficients) {
		return p.Field.Zero()
	}
	return p.Coefficients[i]
}

// Leading returns the highest coefficient, or zero for the zero polynomial.
func (p *Polynomial) Leading() curves.Element {
	return p.Coefficient(p.Degree())
}

func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.Coefficients) != len(q.Coefficients) {
		return false
	}
	for i, c := range p.Coefficients {
		if !c.Equal(q.Coefficients[i]) {
			return false
		}
	}
	return true
}

func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := max(len(p.Coefficients), len(q.Coefficients))
	c := make([]curves.Element, n)
	for i := range c {
		c[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	return normalize(p.Field, c)
}

func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := max(len(p.Coefficients), len(q.Coefficients))
	c := make([]curves.Element, n)
	for i := range c {
		c[i] = p.Coefficient(i).Sub(q.Coefficient(i))
	}
	return normalize(p.Field, c)
}

func (p *Polynomial) Neg() *Polynomial {
	c := make([]curves.Element, len(p.Coefficients))
	for i, a := range p.Coefficients {
		c[i] = a.Neg()
	}
	return normalize(p.Field, c)
}

// Scale multiplies every coefficient by k.
func (p *Polynomial) Scale(k curves.Element) *Polynomial {
	c := make([]curves.Element, len(p.Coefficients))
	for i, a := range p.Coefficients {
		c[i] = a.Mul(k)
	}
	return normalize(p.Field, c)
}

// Mul computes the product by schoolbook convolution.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.Field)
	}

	c := make([]curves.Element, len(p.Coefficients)+len(q.Coefficients)-1)
	for i := range c {
		c[i] = p.Field.Zero()
	}
	for i, a := range p.Coefficients {
		for j, b := range q.Coefficients {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return normalize(p.Field, c)
}

// DivRem divides p by d, returning q and r with p = q*d + r and deg(r) < deg(d).
func (p *Polynomial) DivRem(d *Polynomial) (*Polynomial, *Polynomial, error) {
	if d.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if p.Degree() < d.Degree() {
		return Zero(p.Field), p, nil
	}

	rem := make([]curves.Element, len(p.Coefficients))
	copy(rem, p.Coefficients)

	dDeg := d.Degree()
	lcInv := d.Leading().Invert()
	quot := make([]curves.Element, p.Degree()-dDeg+1)

	for i := len(quot) - 1; i >= 0; i-- {
		// rem[i + dDeg] is the current leading term
		q := rem[i+dDeg].Mul(lcInv)
		quot[i] = q
		if q.IsZero() {
			continue
		}
		for j, b := range d.Coefficients {
			rem[i+j] = rem[i+j].Sub(q.Mul(b))
		}
	}

	return normalize(p.Field, quot), normalize(p.Field, rem[:dDeg]), nil
}

// Evaluate calculates f(x)
func (p *Polynomial) Evaluate(x curves.Element) curves.Element {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	if p.IsZero() {
		return p.Field.Zero()
	}

	degree := p.Degree()
	result := p.Coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []curves.Element) []curves.Element {
	results := make([]curves.Element, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Derivative returns the formal derivative of p.
func (p *Polynomial) Derivative() *Polynomial {
	if p.Degree() < 1 {
		return Zero(p.Field)
	}
	c := make([]curves.Element, p.Degree())
	for i := range c {
		c[i] = p.Coefficients[i+1].Mul(p.Field.NewElement(big.NewInt(int64(i + 1))))
	}
	return normalize(p.Field, c)
}

// Shift returns p(x + s).
func (p *Polynomial) Shift(s curves.Element) *Polynomial {
	lin := Linear(p.Field, s)
	result := Zero(p.Field)
	for i := p.Degree(); i >= 0; i-- {
		result = result.Mul(lin).Add(Constant(p.Field, p.Coefficients[i]))
	}
	return result
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p.Coefficients {
		if c.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(c.String())
		switch {
		case i == 1:
			sb.WriteString("*x")
		case i > 1:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}
