package probe

import (
	"context"

	"github.com/hamed0406/statuscheck/internal/domain"
)

// Kind tags which branch of Result is populated.
type Kind int

const (
	KindOK Kind = iota
	KindTransportError
	KindHTTPStatusError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindTransportError:
		return "transport_error"
	case KindHTTPStatusError:
		return "http_status_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single probe.
//
//   - KindOK: Response set, Err nil.
//   - KindTransportError: Response nil, Err is *TransportError.
//   - KindHTTPStatusError: Response set, Err is *StatusError.
type Result struct {
	Kind      Kind
	Response  *domain.Response
	Err       error
	LatencyMS float64
}

// Outcome collapses the result into the reporting classification.
func (r Result) Outcome() domain.Outcome {
	switch r.Kind {
	case KindTransportError:
		return domain.OutcomeTransportFailure
	case KindHTTPStatusError:
		return domain.OutcomeHTTPError
	}
	if r.Response != nil && r.Response.StatusCode == 200 {
		return domain.OutcomeSuccessWithBody
	}
	return domain.OutcomeSuccessNoBody
}

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
