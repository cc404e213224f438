// Command ecdiv builds the divisor of a seeded random point multiset and prints
// its fixed-width witness as JSON.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdivisors/pkg/ecdiv"
)

type config struct {
	curve     string
	points    int
	maxPoints int
	seed      string
	workers   int
	normalize bool
	commit    bool
	verbose   bool
}

type output struct {
	*ecdiv.Witness
	Commitment string `json:"commitment,omitempty"`
	Salt       string `json:"salt,omitempty"`
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("ecdiv", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVar(&cfg.curve, "curve", "secp256k1", "curve: secp256k1, ed25519 or toy97")
	fs.IntVarP(&cfg.points, "points", "n", 8, "number of points in the multiset")
	fs.IntVar(&cfg.maxPoints, "max-points", 0, "pad the witness for this many points (0: --points)")
	fs.StringVar(&cfg.seed, "seed", "ecdiv", "seed for the point multiset")
	fs.IntVarP(&cfg.workers, "workers", "w", 1, "worker goroutines for merge rounds")
	fs.BoolVar(&cfg.normalize, "normalize", true, "scale the divisor to its canonical form")
	fs.BoolVar(&cfg.commit, "commit", false, "add a salted commitment to the witness")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log construction details to stderr")

	return fs
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ecdiv: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var cfg config
	if err := newFlagSet(&cfg).Parse(args); err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return errors.Wrap(err, "create logger")
		}
		defer func() { _ = logger.Sync() }()
	}

	curve, err := ecdiv.CurveByName(cfg.curve)
	if err != nil {
		return err
	}

	points, err := ecdiv.SampleMultiset(curve, cfg.points, []byte(cfg.seed))
	if err != nil {
		return err
	}
	logger.Info("sampled multiset",
		zap.String("curve", curve.Name()),
		zap.Int("points", len(points)),
		zap.String("seed", cfg.seed),
	)

	d, err := ecdiv.BuildDivisor(curve, points,
		ecdiv.WithLogger(logger.Named("divisor")),
		ecdiv.WithWorkers(cfg.workers),
	)
	if err != nil {
		return errors.Wrap(err, "build divisor")
	}
	if cfg.normalize {
		d = d.Normalize()
	}

	w, err := ecdiv.NewWitness(d, cfg.maxPoints)
	if err != nil {
		return err
	}

	res := output{Witness: w}
	if cfg.commit {
		c, err := w.Commit()
		if err != nil {
			return errors.Wrap(err, "commit witness")
		}
		res.Commitment = hex.EncodeToString(c.C)
		res.Salt = hex.EncodeToString(c.D)
		logger.Debug("committed witness", zap.String("commitment", res.Commitment))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
