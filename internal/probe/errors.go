package probe

import "fmt"

// TransportError means no response was obtained at all
// (DNS, connect, TLS, timeout, malformed URL).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "request to " + e.URL + " failed"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a completed request whose status is 400 or above.
type StatusError struct {
	URL        string
	StatusCode int
	Reason     string
	Body       string
}

func (e *StatusError) Error() string {
	class := "Client Error"
	if e.StatusCode >= 500 {
		class = "Server Error"
	}
	return fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, class, e.Reason, e.URL)
}
