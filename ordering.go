package dockerhubutil

import (
	"strings"

	"github.com/woozymasta/semver"
)

// Ordering controls how the newest tag is chosen from a tag list.
type Ordering uint8

const (
	// OrderingLexical picks the plain lexicographic maximum of the tag
	// strings. Historical behavior: "1.2" beats "1.10".
	OrderingLexical Ordering = iota

	// OrderingSemver picks the highest tag by SemVer precedence. Tags that
	// do not parse as SemVer compete lexicographically among themselves and
	// lose to any tag that parses.
	OrderingSemver
)

// String returns a stable textual representation for Ordering.
func (o Ordering) String() string {
	if o == OrderingSemver {
		return "semver"
	}

	return "lexical"
}

// ParseOrdering maps free-form tokens to Ordering.
// Supported aliases (case-insensitive):
//
//	lexical: "lexical","lex","string","plain"
//	semver:  "semver","sv","semantic"
func ParseOrdering(s string) Ordering {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "semver", "sv", "semantic":
		return OrderingSemver

	case "lexical", "lex", "string", "plain":
		return OrderingLexical

	default:
		return OrderingLexical
	}
}

// Latest returns the greatest tag under this ordering.
// The input must be non-empty; callers guard with ErrNoTags.
func (o Ordering) Latest(tags []string) string {
	if o == OrderingSemver {
		return latestSemver(tags)
	}

	best := tags[0]
	for _, t := range tags[1:] {
		if t > best {
			best = t
		}
	}

	return best
}

// latestSemver scans for the highest SemVer tag, keeping a lexicographic
// best among unparsable tags as the fallback.
func latestSemver(tags []string) string {
	var (
		bestVer semver.Semver
		bestRaw string
		haveVer bool
		lexBest string
	)

	for _, t := range tags {
		if v, ok := semver.Parse(t); ok && v.Valid {
			if !haveVer || v.Compare(bestVer) > 0 {
				bestVer, bestRaw, haveVer = v, t, true
			}
			continue
		}

		if lexBest == "" || t > lexBest {
			lexBest = t
		}
	}

	if haveVer {
		return bestRaw
	}

	return lexBest
}
