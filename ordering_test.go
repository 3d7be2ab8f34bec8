package dockerhubutil

import "testing"

func TestParseOrdering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Ordering
	}{
		{"lexical", OrderingLexical},
		{"lex", OrderingLexical},
		{"string", OrderingLexical},
		{"plain", OrderingLexical},
		{"semver", OrderingSemver},
		{"SemVer", OrderingSemver},
		{"sv", OrderingSemver},
		{"semantic", OrderingSemver},
		{"", OrderingLexical},
		{"garbage", OrderingLexical},
	}

	for _, tc := range cases {
		if got := ParseOrdering(tc.in); got != tc.want {
			t.Fatalf("ParseOrdering(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestOrderingString(t *testing.T) {
	t.Parallel()

	if got := OrderingLexical.String(); got != "lexical" {
		t.Fatalf("OrderingLexical.String() = %q", got)
	}
	if got := OrderingSemver.String(); got != "semver" {
		t.Fatalf("OrderingSemver.String() = %q", got)
	}
}

func TestOrderingLatest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		ordering Ordering
		in       []string
		want     string
	}{
		// The documented string-comparison behavior: "1.2" beats "1.10".
		{"lexical shorthand", OrderingLexical, []string{"1.2", "1.10"}, "1.2"},
		{"lexical single", OrderingLexical, []string{"2.0.0"}, "2.0.0"},
		{"lexical words", OrderingLexical, []string{"alpha", "beta", "1.0"}, "beta"},

		{"semver shorthand", OrderingSemver, []string{"1.2", "1.10"}, "1.10"},
		{"semver full", OrderingSemver, []string{"1.2.3", "1.10.0", "1.2.10"}, "1.10.0"},
		{"semver v-prefix", OrderingSemver, []string{"v3.50.0", "v3.9.1"}, "v3.50.0"},
		{"semver beats non-semver", OrderingSemver, []string{"zzz", "0.1.0"}, "0.1.0"},
		{"semver all unparsable", OrderingSemver, []string{"beta", "alpha"}, "beta"},
	}

	for _, tc := range cases {
		if got := tc.ordering.Latest(tc.in); got != tc.want {
			t.Fatalf("%s: Latest(%v) = %q; want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
