package domain

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Outcome classifies a finished check. The zero value is OutcomePending.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccessWithBody
	OutcomeSuccessNoBody
	OutcomeHTTPError
	OutcomeTransportFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSuccessWithBody:
		return "success_with_body"
	case OutcomeSuccessNoBody:
		return "success_no_body"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Done is true once the outcome is terminal.
func (o Outcome) Done() bool {
	return o != OutcomePending
}

// ExitCode maps the outcome to the process exit status.
// A pending outcome never reached a verdict and counts as a failure.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccessWithBody, OutcomeSuccessNoBody:
		return ExitSuccess
	default:
		return ExitFailure
	}
}
