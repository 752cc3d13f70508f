package relativetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns are tried in order; the first match wins.
var patterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`(\d+)\s*minutes?\s*ago`), time.Minute},
	{regexp.MustCompile(`(\d+)\s*hours?\s*ago`), time.Hour},
	{regexp.MustCompile(`(\d+)\s*days?\s*ago`), 24 * time.Hour},
}

// Parse resolves a relative age string like "3 hours ago" against a
// reference instant and returns ref minus the stated duration. Matching is
// case-insensitive. Unrecognized non-empty phrasings ("just now", wording the
// source may introduce later) resolve to the reference instant itself,
// treating the item as very recent. The boolean is false only for empty
// input.
func Parse(raw string, ref time.Time) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return ref.Add(-time.Duration(n) * p.unit), true
	}
	return ref, true
}
