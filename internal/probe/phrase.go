package probe

import "net/http"

const unknownPhrase = "Unknown"

// Phrase returns the standard reason phrase for code, or "Unknown".
func Phrase(code int) string {
	if p := http.StatusText(code); p != "" {
		return p
	}
	return unknownPhrase
}
