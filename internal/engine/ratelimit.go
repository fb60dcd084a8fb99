package engine

import "strings"

// Substrings of engine stderr output that indicate upstream throttling. This
// is a textual contract with the engine and nothing else should match on
// stderr content directly.
var rateLimitSignatures = []string{
	"HTTP Error 429",
	"Too Many Requests",
}

// IsRateLimitText reports whether a chunk of engine diagnostics signals an
// upstream rate limit.
func IsRateLimitText(chunk string) bool {
	for _, sig := range rateLimitSignatures {
		if strings.Contains(chunk, sig) {
			return true
		}
	}
	return false
}
