package iocheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/google/uuid"
)

// runner implements integrity.Runner.
type runner struct {
	op       db.Operator
	target   string
	onResult func(integrity.Result)
}

// Option configures the runner.
type Option func(*runner)

// OptTarget sets a password-free description of the database for logs
// and the report.
func OptTarget(s string) Option {
	return func(r *runner) {
		r.target = s
	}
}

// OptOnResult sets a function called after every check, for example to
// advance a progress bar.
func OptOnResult(fn func(integrity.Result)) Option {
	return func(r *runner) {
		r.onResult = fn
	}
}

// NewRunner creates a runner over a connected operator.
func NewRunner(op db.Operator, opts ...Option) integrity.Runner {
	res := &runner{op: op}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Run executes checks one by one, each within its own cursor scope.
// Failed and errored checks are recorded and the run continues. If ctx
// is cancelled, checks that did not start are recorded as errors. The
// run is aborted with an error only when the connection is gone.
func (r *runner) Run(
	ctx context.Context,
	checks []integrity.Check,
) (*integrity.Report, error) {
	rep := integrity.NewReport(uuid.NewString(), r.target)
	slog.Info("Starting integrity checks",
		"run_id", rep.RunID,
		"database", r.target,
		"checks", len(checks),
	)

	for _, chk := range checks {
		start := time.Now()

		var out integrity.Outcome
		if err := ctx.Err(); err != nil {
			cause := context.Cause(ctx)
			out = integrity.Errored(
				"check was not run: "+cause.Error(),
				CancelledError(chk.Name, cause),
			)
		} else {
			var err error
			out, err = r.runCheck(ctx, chk)
			if err != nil {
				rep.Finish()
				slog.Error("Integrity checks aborted",
					"run_id", rep.RunID,
					"check", chk.Name,
					"error", err,
				)
				return rep, err
			}
		}

		res := integrity.NewResult(chk, out, time.Since(start))
		rep.Add(res)
		logResult(rep.RunID, res, out.Err)
		if r.onResult != nil {
			r.onResult(res)
		}
	}

	rep.Finish()
	slog.Info("Finished integrity checks",
		"run_id", rep.RunID,
		"passed", rep.Passed,
		"failed", rep.Failed,
		"errored", rep.Errored,
		"seconds", rep.Seconds,
	)
	return rep, nil
}

// runCheck evaluates one check. The returned error means that the
// connection is lost and no further check can run.
func (r *runner) runCheck(
	ctx context.Context,
	chk integrity.Check,
) (integrity.Outcome, error) {
	var out integrity.Outcome
	err := r.op.WithCursor(ctx, func(ctx context.Context, cur db.Cursor) error {
		out = safeRun(ctx, chk, cur)
		if out.Status == integrity.Error {
			// lets the operator verify the connection
			return out.Err
		}
		return nil
	})

	switch {
	case err == nil:
	case out.Err != nil && errors.Is(err, out.Err):
	case isNotConnected(err):
		return out, err
	default:
		out = integrity.Errored(describeDBError(err), err)
	}
	return out, nil
}

// safeRun converts a panic of a check into an error outcome.
func safeRun(
	ctx context.Context,
	chk integrity.Check,
	cur db.Cursor,
) (out integrity.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = integrity.Errored(
				fmt.Sprintf("check panicked: %v", rec),
				PanicError(chk.Name, rec),
			)
		}
	}()
	return chk.Run(ctx, cur)
}

func isNotConnected(err error) bool {
	var gnErr *gn.Error
	return errors.As(err, &gnErr) && gnErr.Code == errcode.DBNotConnectedError
}

func logResult(runID string, res integrity.Result, err error) {
	attrs := []any{
		"run_id", runID,
		"check", res.Name,
		"kind", res.Kind.String(),
		"seconds", res.Seconds,
	}
	switch res.Status {
	case integrity.Pass:
		if res.Note != "" {
			attrs = append(attrs, "note", res.Note)
		}
		slog.Info("Check passed", attrs...)
	case integrity.Fail:
		slog.Warn("Check failed",
			append(attrs, "diagnostic", res.Diagnostic)...)
	default:
		slog.Error("Check could not be evaluated",
			append(attrs, "diagnostic", res.Diagnostic, "error", err)...)
	}
}
