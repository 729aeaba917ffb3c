// Package statuscheck runs the one-shot status check and renders the
// human-readable report.
package statuscheck

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/statuscheck/internal/domain"
	"github.com/hamed0406/statuscheck/internal/probe"
)

// TargetURL is the fixed test endpoint. It has no override.
const TargetURL = "https://httpbin.org/status/401"

type Runner struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Target  string
	Out     io.Writer
}

func New(logger *zap.Logger, checker probe.Checker, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Logger:  logger,
		Checker: checker,
		Target:  TargetURL,
		Out:     out,
	}
}

// Run performs exactly one check, writes the report and returns the
// terminal outcome. Exiting the process is left to the caller.
func (r *Runner) Run(ctx context.Context) domain.Outcome {
	res := r.Checker.Check(ctx, r.Target)
	outcome := res.Outcome()

	switch res.Kind {
	case probe.KindTransportError:
		r.reportTransportError(res.Err)
	case probe.KindHTTPStatusError:
		r.reportStatusError(res.Err, res.Response)
	default:
		r.reportSuccess(res.Response)
	}

	fields := []zap.Field{
		zap.String("url", r.Target),
		zap.String("outcome", outcome.String()),
		zap.Int("exit_code", outcome.ExitCode()),
		zap.Float64("latency_ms", res.LatencyMS),
	}
	if res.Response != nil {
		fields = append(fields, zap.Int("status", res.Response.StatusCode))
	}
	if res.Err != nil {
		r.Logger.Warn("status_check_failed", append(fields, zap.Error(res.Err))...)
	} else {
		r.Logger.Info("status_check_done", fields...)
	}
	return outcome
}
