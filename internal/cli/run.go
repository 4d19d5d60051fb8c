package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// runner evaluates expressions and formats their results.
type runner struct {
	cfg    Config
	ev     *calc.Evaluator
	out    *OutputFormatter
	logger log.Logger
}

func newRunner(cfg Config, w io.Writer, logger log.Logger) *runner {
	return &runner{
		cfg:    cfg,
		ev:     calc.NewEvaluator(cfg.options(logger)...),
		out:    &OutputFormatter{Format: cfg.Format, Writer: w, Echo: cfg.Echo},
		logger: logger,
	}
}

// evalOne evaluates a single expression. Failures are reported in the result
// rather than as an error.
func (r *runner) evalOne(expr string) Result {
	res := Result{Expression: expr}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Code = errorCode(err)
		return res
	}
	g, err := r.ev.Parse(expr)
	if err != nil {
		return fail(err)
	}
	if r.cfg.Echo {
		res.Tree = g.String()
	}
	v, err := r.ev.EvalGroup(g)
	if err != nil {
		return fail(err)
	}
	res.Result = fmt.Sprintf(r.cfg.Verb, v)
	return res
}

// errorCode gives a short machine-readable name for an evaluation error.
func errorCode(err error) string {
	var (
		unbalanced  *calc.UnbalancedExpressionError
		unsupported *calc.UnsupportedOperatorError
		divzero     *calc.DivisionByZeroError
		malformed   *calc.MalformedExpressionError
		number      *calc.MalformedNumberError
		domain      *calc.DomainError
	)
	switch {
	case errors.As(err, &unbalanced):
		return "unbalanced"
	case errors.As(err, &unsupported):
		return "unsupported_operator"
	case errors.As(err, &divzero):
		return "division_by_zero"
	case errors.As(err, &malformed):
		return "malformed"
	case errors.As(err, &number):
		return "malformed_number"
	case errors.As(err, &domain):
		return "domain"
	default:
		return "error"
	}
}

// batch evaluates exprs concurrently and writes their results in input
// order. It returns an ExitError if any expression fails.
func (r *runner) batch(ctx context.Context, exprs []string) error {
	results := make([]Result, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.evalOne(expr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
		if err := r.out.Write(res); err != nil {
			return errors.Wrap(err, "writing result")
		}
	}
	level.Info(r.logger).Log("msg", "evaluated batch", "expressions", len(exprs), "failed", failed)
	if failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d of %d expressions failed", failed, len(exprs))}
	}
	return nil
}

// readLines reads one expression per line, skipping blank lines.
func readLines(in io.Reader, name string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}
