package probe

import (
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hamed0406/statuscheck/internal/domain"
)

func toResponse(target string, resp *resty.Response) *domain.Response {
	code := resp.StatusCode()
	url := target
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		// final URL after redirects
		url = raw.Request.URL.String()
	}
	return &domain.Response{
		URL:        url,
		StatusCode: code,
		Reason:     reasonFromStatus(code, resp.Status()),
		Header:     resp.Header().Clone(),
		Body:       string(resp.Body()),
	}
}

// reasonFromStatus prefers the phrase the server sent ("401 UNAUTHORIZED")
// and falls back to the standard table.
func reasonFromStatus(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		return Phrase(code)
	}
	return reason
}
