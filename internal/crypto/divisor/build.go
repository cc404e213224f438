package divisor

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdivisors/internal/crypto/curves"
	"github.com/smallyu/go-ecdivisors/internal/crypto/polynomial"
)

// node is a partial divisor: a function whose zeros are the points folded into
// it plus one extra zero at running, the negated sum of those points.
type node struct {
	fn      function
	running curves.Point
}

type builder struct {
	curve curves.Curve
	field curves.Field
	rhs   *polynomial.Polynomial // x^3 + a*x + b
	opts  *options
}

// Build constructs the divisor of points: a function a(x) + y*b(x) vanishing
// exactly at every point of the multiset (with multiplicity) and with its only
// pole at infinity. The points must sum to the identity.
//
// Odd-length input is padded with one identity. Inputs with fewer than two
// points fail with ErrInvalidInput.
func Build(curve curves.Curve, points []curves.Point, opts ...Option) (*Divisor, error) {
	o := newOptions(opts)
	n := len(points)
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 2 points, got %d", n)
	}
	if o.validate {
		if err := validate(curve, points); err != nil {
			return nil, err
		}
	}

	field := curve.Field()
	b := &builder{
		curve: curve,
		field: field,
		rhs:   polynomial.New(field, curve.B(), curve.A(), field.Zero(), field.One()),
		opts:  o,
	}

	padded := points
	if n%2 == 1 {
		padded = make([]curves.Point, n+1)
		copy(padded, points)
		padded[n] = curves.Identity()
	}

	o.logger.Debug("building divisor",
		zap.String("curve", curve.Name()),
		zap.Int("points", n),
		zap.Int("padded", len(padded)),
		zap.Int("workers", o.workers),
	)

	var pool *ants.Pool
	if o.workers > 1 {
		var err error
		if pool, err = ants.NewPool(o.workers); err != nil {
			return nil, errors.Wrap(err, "create worker pool")
		}
		defer pool.Release()
	}

	nodes, err := b.leaves(padded)
	if err != nil {
		return nil, err
	}

	rounds := 0
	for len(nodes) > 1 {
		if nodes, err = b.round(pool, nodes); err != nil {
			return nil, err
		}
		rounds++
	}

	root := nodes[0]
	if !root.running.IsIdentity() {
		return nil, errors.Wrapf(ErrInvalidInput, "points sum to %s, not the identity", curve.Neg(root.running))
	}

	d := &Divisor{A: root.fn.a, B: root.fn.b, curve: curve, n: n}
	aMax, bMax := DegreeBounds(n)
	if d.A.Degree() > aMax || d.B.Degree() > bMax {
		return nil, defect(ErrDegreeOverflow, "deg(a) = %d, deg(b) = %d for %d points", d.A.Degree(), d.B.Degree(), n)
	}

	o.logger.Debug("divisor built",
		zap.Int("rounds", rounds),
		zap.Int("deg_a", d.A.Degree()),
		zap.Int("deg_b", d.B.Degree()),
	)
	return d, nil
}

func validate(curve curves.Curve, points []curves.Point) error {
	for i, p := range points {
		if !curve.IsOnCurve(p) {
			return errors.Wrapf(ErrInvalidInput, "point %d %s is not on %s", i, p, curve.Name())
		}
	}
	if sum := curves.Sum(curve, points); !sum.IsIdentity() {
		return errors.Wrapf(ErrInvalidInput, "points sum to %s, not the identity", sum)
	}
	return nil
}

// leaves joins adjacent points with their connecting functions.
func (b *builder) leaves(points []curves.Point) ([]node, error) {
	nodes := make([]node, len(points)/2)
	for i := range nodes {
		fn, running, err := b.connect(points[2*i], points[2*i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "points %d and %d", 2*i, 2*i+1)
		}
		nodes[i] = node{fn: fn, running: running}
	}
	return nodes, nil
}

// round merges adjacent nodes, halving their count. An odd node out is carried
// to the next round unchanged.
func (b *builder) round(pool *ants.Pool, nodes []node) ([]node, error) {
	pairs := len(nodes) / 2
	next := make([]node, pairs+len(nodes)%2)
	errs := make([]error, pairs)

	if pool != nil && pairs >= b.opts.parallelThreshold {
		b.opts.logger.Debug("parallel merge round", zap.Int("merges", pairs))

		var wg sync.WaitGroup
		for i := 0; i < pairs; i++ {
			i := i
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				next[i], errs[i] = b.merge(nodes[2*i], nodes[2*i+1])
			}); err != nil {
				wg.Done()
				errs[i] = errors.Wrap(err, "submit merge")
			}
		}
		wg.Wait()
	} else {
		for i := 0; i < pairs; i++ {
			next[i], errs[i] = b.merge(nodes[2*i], nodes[2*i+1])
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if len(nodes)%2 == 1 {
		next[pairs] = nodes[len(nodes)-1]
	}
	return next, nil
}

// merge combines two partial divisors. With running points r1 and r2 the
// product l*r gains the extra zeros r1 and r2; multiplying by the line through
// -r1 and -r2 and dividing by the verticals at r1 and r2 replaces them with the
// single extra zero r1 + r2.
func (b *builder) merge(l, r node) (node, error) {
	product := l.fn.mul(r.fn, b.rhs)

	if l.running.IsIdentity() || r.running.IsIdentity() {
		return node{fn: product, running: b.curve.Add(l.running, r.running)}, nil
	}

	if b.curve.Equal(l.running, b.curve.Neg(r.running)) {
		// The connecting line is the vertical at r1 and cancels one of the two
		// verticals. This also covers r1 = r2 of order two.
		fn, err := product.divExact(polynomial.Linear(b.field, l.running.X.Neg()))
		if err != nil {
			return node{}, err
		}
		return node{fn: fn, running: curves.Identity()}, nil
	}

	line, running, err := b.connect(b.curve.Neg(l.running), b.curve.Neg(r.running))
	if err != nil {
		return node{}, errors.Wrap(err, "connect running points")
	}

	verticals := polynomial.FromRoots(b.field, l.running.X, r.running.X)
	fn, err := product.mul(line, b.rhs).divExact(verticals)
	if err != nil {
		return node{}, err
	}
	return node{fn: fn, running: running}, nil
}
