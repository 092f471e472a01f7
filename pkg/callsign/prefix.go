package callsign

import (
	"time"

	"github.com/koarlchen/hamcall/pkg/clublog"
)

// ---------------------------------------------------------------------------
// Prefix resolution
// ---------------------------------------------------------------------------

// resolvePrefix searches for the prefix record matching a candidate string.
//
// The candidate is shortened from the right one character at a time until a
// record matches; trying longest-first ties a call like UA9ABC to the more
// specific prefix UA9 rather than the shorter U when both exist. At each
// length, before the plain string, every "shortened/appendix" compound is
// tried for each single-letter appendix of the call, so that a compound
// prefix like SV/A wins over the plain SV when a matching one-letter
// appendix is present.
//
// Next to the matched record the number of characters removed from the
// candidate is returned, letting the caller rank competing candidates by
// specificity (fewer removals wins).
func (a *Analyzer) resolvePrefix(candidate string, at time.Time, appendices []part) (*clublog.Prefix, int, bool) {
	n := len(candidate)
	if n == 0 {
		return nil, 0, false
	}

	var singles []string
	for _, ap := range appendices {
		if isSingleLetter(ap.text) {
			singles = append(singles, ap.text)
		}
	}

	for cnt := n; cnt >= 1; cnt-- {
		head := candidate[:cnt]

		for _, ap := range singles {
			if p, ok := a.data.GetPrefix(head+"/"+ap, at); ok {
				return p, n - cnt, true
			}
		}

		if p, ok := a.data.GetPrefix(head, at); ok {
			return p, n - cnt, true
		}
	}

	return nil, 0, false
}

func isSingleLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

func isSingleDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
