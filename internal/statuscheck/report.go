package statuscheck

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hamed0406/statuscheck/internal/domain"
	"github.com/hamed0406/statuscheck/internal/probe"
)

const noResponseText = "No Response Text"

func (r *Runner) reportSuccess(resp *domain.Response) {
	phrase := probe.Phrase(resp.StatusCode)
	fmt.Fprintf(r.Out, "Request was successful! Status code: %d (%s)\n", resp.StatusCode, phrase)

	if resp.StatusCode == 200 {
		fmt.Fprintln(r.Out, "Response text:", resp.Body)
		fmt.Fprintln(r.Out, "Response headers:", formatHeaders(resp))
		return
	}
	fmt.Fprintf(r.Out, "Received a successful but unexpected response: %d (%s)\n", resp.StatusCode, phrase)
	fmt.Fprintln(r.Out, "No content or additional data to process.")
}

// reportStatusError is a hard failure: the extra exit-code line is printed.
func (r *Runner) reportStatusError(err error, resp *domain.Response) {
	body := noResponseText
	if resp.HasBody() {
		body = fmt.Sprintf("%q", resp.Body)
	}
	r.fail(fmt.Sprintf("%s::%v::RESPONSE: %s", typeName(err), err, body), domain.ExitFailure, false)
}

// reportTransportError is graceful: no exit-code line.
func (r *Runner) reportTransportError(err error) {
	cause := err
	var te *probe.TransportError
	if errors.As(err, &te) && te.Err != nil {
		cause = te.Err
	}
	r.fail(fmt.Sprintf("%s::%v::No Response", typeName(cause), err), domain.ExitFailure, true)
}

func (r *Runner) fail(msg string, exitCode int, graceful bool) {
	fmt.Fprintf(r.Out, "ERROR: %s\n", msg)
	if !graceful {
		fmt.Fprintf(r.Out, "Failure. Exit code: %d\n", exitCode)
	}
}

// typeName turns *url.Error into url.Error.
func typeName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func formatHeaders(resp *domain.Response) string {
	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s': '%s'", k, strings.Join(resp.Header[k], ", "))
	}
	b.WriteByte('}')
	return b.String()
}
