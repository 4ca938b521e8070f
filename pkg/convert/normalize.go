package convert

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/peoplemap/pkg/people"
)

// normalizeName collapses whitespace and title-cases names that arrive in a
// single case ("ADA LOVELACE", "ada lovelace"). Mixed-case names such as
// "McAllister" or "van Rossum" are kept as written.
func normalizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || !singleCase(s) {
		return s
	}
	return cases.Title(language.English).String(s)
}

func singleCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return upper != lower
}

// normalizeEmail trims and lowercases an address.
func normalizeEmail(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// appendUnique appends the non-empty values of vs to dst, skipping duplicates.
func appendUnique(dst []string, vs ...string) []string {
	for _, v := range vs {
		if v == "" {
			continue
		}
		dup := false
		for _, d := range dst {
			if d == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

// displayName picks the first non-empty candidate, falling back to the
// given and family names joined.
func displayName(given, family string, candidates ...string) string {
	for _, c := range candidates {
		if c = normalizeName(c); c != "" {
			return c
		}
	}
	return strings.TrimSpace(given + " " + family)
}

// Batch converts every record with fn. Records that fail conversion are
// left out of the result and their errors returned in input order.
func Batch[R any](records []R, fn func(R) (people.PersonInfo, error)) ([]people.PersonInfo, []error) {
	out := make([]people.PersonInfo, 0, len(records))
	var errs []error
	for _, r := range records {
		p, err := fn(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, p)
	}
	return out, errs
}
