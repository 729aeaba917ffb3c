package probe

import "testing"

func TestPhrase(t *testing.T) {
	cases := map[int]string{
		200: "OK",
		201: "Created",
		204: "No Content",
		401: "Unauthorized",
		500: "Internal Server Error",
		299: "Unknown",
		799: "Unknown",
	}
	for code, want := range cases {
		if got := Phrase(code); got != want {
			t.Fatalf("Phrase(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestReasonFromStatus(t *testing.T) {
	if got := reasonFromStatus(401, "401 UNAUTHORIZED"); got != "UNAUTHORIZED" {
		t.Fatalf("server reason should win, got %q", got)
	}
	if got := reasonFromStatus(401, "401"); got != "Unauthorized" {
		t.Fatalf("fallback to table, got %q", got)
	}
	if got := reasonFromStatus(299, ""); got != "Unknown" {
		t.Fatalf("fallback to Unknown, got %q", got)
	}
}

func TestStatusError_Message(t *testing.T) {
	e := &StatusError{URL: "https://example.com/x", StatusCode: 404, Reason: "Not Found"}
	if e.Error() != "404 Client Error: Not Found for url: https://example.com/x" {
		t.Fatalf("unexpected %q", e.Error())
	}
	e = &StatusError{URL: "u", StatusCode: 503, Reason: "Service Unavailable"}
	if e.Error() != "503 Server Error: Service Unavailable for url: u" {
		t.Fatalf("unexpected %q", e.Error())
	}
}
