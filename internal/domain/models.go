package domain

import "net/http"

// Response is the reply to the single outbound request. It is consumed
// while the outcome is reported and never stored.
type Response struct {
	URL        string      `json:"url"`
	StatusCode int         `json:"status_code"`
	Reason     string      `json:"reason"`
	Header     http.Header `json:"headers"`
	Body       string      `json:"body"`
}

// HasBody reports whether the server sent any body text.
func (r *Response) HasBody() bool {
	return r != nil && r.Body != ""
}
