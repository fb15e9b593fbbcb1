// Package difftest runs randomized differential tests of package bigint
// against math/big.
//
// Every case draws two random decimal operands, computes their sum and
// difference (and optionally a scalar product) with both implementations, and
// compares the decimal renderings. A run is reproducible from its seed and is
// identified by a UUIDv7 run id in logs and reports.
package difftest

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"math/rand"
	"strings"
	"time"

	"github.com/bobg/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/bigint"
)

// Options configures a run. Zero fields take sensible defaults.
type Options struct {
	Flavor   bigint.Flavor
	Strategy bigint.Strategy
	Cases    int
	MaxLen   int
	Seed     int64 // 0 picks a seed from the clock
	Workers  int
	Mul      bool
	Logger   *slog.Logger
}

// Case is the outcome of a single operation.
type Case struct {
	Index int    `json:"index"`
	Op    string `json:"op"`
	A     string `json:"a"`
	B     string `json:"b"`
	Got   string `json:"got"`
	Want  string `json:"want"`
}

// Report aggregates the results of a run.
type Report struct {
	RunID    string `json:"run_id"`
	Seed     int64  `json:"seed"`
	Base     uint64 `json:"base"`
	Strategy string `json:"strategy"`
	Cases    int    `json:"cases"`
	Checks   int    `json:"checks"`
	Failed   int    `json:"failed"`
	Failures []Case `json:"failures,omitempty"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool { return r.Failed == 0 }

func (o *Options) defaults() {
	if !o.Flavor.IsValid() {
		o.Flavor = bigint.Default
	}
	if o.MaxLen < 1 {
		o.MaxLen = 1000
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Run executes opts.Cases random cases on opts.Workers workers. Failures are
// collected in case order. Run only returns an error if ctx is cancelled or a
// case could not be evaluated at all; mismatches are reported in the Report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	opts.defaults()
	runID := uuid.Must(uuid.NewV7()).String()
	log := opts.Logger.With("run_id", runID)
	log.Info("difftest starting",
		"seed", opts.Seed,
		"flavor", opts.Flavor,
		"strategy", opts.Strategy,
		"cases", opts.Cases,
		"workers", opts.Workers)

	results := make([][]Case, opts.Cases)
	checks := make([]int, opts.Cases)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	// one PRNG per worker slot, reseeded for every case so that the inputs only
	// depend on the seed and the case index
	rnds := make(chan *rand.Rand, opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		rnds <- rand.New(rand.NewSource(opts.Seed))
	}
	for i := 0; i < opts.Cases; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rnd := <-rnds
			defer func() { rnds <- rnd }()
			rnd.Seed(opts.Seed + int64(i))

			failures, n, err := runCase(rnd, i, &opts)
			if err != nil {
				return errors.Wrapf(err, "case %d", i)
			}
			for _, f := range failures {
				log.Warn("mismatch", "case", i, "op", f.Op, "a", f.A, "b", f.B, "got", f.Got, "want", f.Want)
			}
			results[i], checks[i] = failures, n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{
		RunID:    runID,
		Seed:     opts.Seed,
		Base:     opts.Flavor.Base(),
		Strategy: opts.Strategy.String(),
		Cases:    opts.Cases,
	}
	for i := range results {
		r.Checks += checks[i]
		r.Failures = append(r.Failures, results[i]...)
	}
	r.Failed = len(r.Failures)
	log.Info("difftest finished", "checks", r.Checks, "failed", r.Failed)
	return r, nil
}

// runCase evaluates case i and returns the failed checks and the total number
// of checks.
func runCase(rnd *rand.Rand, i int, opts *Options) ([]Case, int, error) {
	sa, sb := RandomDecimal(rnd, opts.MaxLen), RandomDecimal(rnd, opts.MaxLen)
	a, err := opts.Flavor.Parse(sa)
	if err != nil {
		return nil, 0, err
	}
	b, err := opts.Flavor.Parse(sb)
	if err != nil {
		return nil, 0, err
	}
	ba, bb := reference(sa), reference(sb)

	var failures []Case
	check := func(op string, got *bigint.Int, want *big.Int) error {
		// render through the configured strategy
		d, err := got.ConvertWith(bigint.Default, opts.Strategy)
		if err != nil {
			return err
		}
		if g, w := d.String(), want.String(); g != w {
			failures = append(failures, Case{Index: i, Op: op, A: sa, B: sb, Got: g, Want: w})
		}
		return nil
	}

	sum, err := a.Add(b)
	if err != nil {
		return nil, 0, err
	}
	if err = check("+", sum, new(big.Int).Add(ba, bb)); err != nil {
		return nil, 0, err
	}
	diff, err := a.Sub(b)
	if err != nil {
		return nil, 0, err
	}
	if err = check("-", diff, new(big.Int).Sub(ba, bb)); err != nil {
		return nil, 0, err
	}
	if !opts.Mul {
		return failures, 2, nil
	}
	y := bigint.Word(rnd.Uint32())
	if err = check("*", a.MulWord(y), new(big.Int).Mul(ba, new(big.Int).SetUint64(uint64(y)))); err != nil {
		return nil, 0, err
	}
	return failures, 3, nil
}

// RandomDecimal returns a random decimal string of 1 to maxLen digits,
// with a random leading sign ('-', '+' or none) and possibly leading zeros.
func RandomDecimal(rnd *rand.Rand, maxLen int) string {
	var sb strings.Builder
	switch rnd.Intn(3) {
	case 0:
		sb.WriteByte('-')
	case 1:
		sb.WriteByte('+')
	}
	n := rnd.Intn(maxLen) + 1
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rnd.Intn(10)))
	}
	return sb.String()
}

// reference parses s with math/big.
func reference(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		// RandomDecimal never produces an empty digit sequence
		panic("difftest: invalid reference operand " + s)
	}
	return z
}
