package nlquery

import (
	"regexp"
	"strconv"

	"lexis/internal/core/filter"
)

// rule is one recognizer in the translation table. pattern runs against
// the lowercased query; on a match, apply folds captures into the filter.
// Rules run in table order and later rules may overwrite earlier ones,
// which is how negations win ("not a palindrome" matches both the
// palindrome rule and its negation; the negation sits later)
type rule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(m []string, f *filter.Filter)
}

// rules is the ordered translation table. Keep numeric rules after the
// word-count phrases so "two words" is not shadowed, and keep negations
// after their positive forms
var rules = []rule{
	{
		name:    "palindrome",
		pattern: regexp.MustCompile(`palindrom`),
		apply:   func(_ []string, f *filter.Filter) { f.IsPalindrome = ptr(true) },
	},
	{
		name:    "not-palindrome",
		pattern: regexp.MustCompile(`(?:not|non|aren't|isn't)[\s-]*(?:a\s+)?palindrom`),
		apply:   func(_ []string, f *filter.Filter) { f.IsPalindrome = ptr(false) },
	},
	{
		name:    "single-word",
		pattern: regexp.MustCompile(`single[\s-]word|one\s+word`),
		apply:   func(_ []string, f *filter.Filter) { f.WordCount = ptr(1) },
	},
	{
		name:    "two-words",
		pattern: regexp.MustCompile(`two\s+words`),
		apply:   func(_ []string, f *filter.Filter) { f.WordCount = ptr(2) },
	},
	{
		name:    "three-words",
		pattern: regexp.MustCompile(`three\s+words`),
		apply:   func(_ []string, f *filter.Filter) { f.WordCount = ptr(3) },
	},
	{
		name:    "n-words",
		pattern: regexp.MustCompile(`(\d+)\s+words?\b`),
		apply:   func(m []string, f *filter.Filter) { f.WordCount = intp(m[1]) },
	},
	{
		name:    "longer-than",
		pattern: regexp.MustCompile(`longer\s+than\s+(\d+)|more\s+than\s+(\d+)\s+char`),
		apply: func(m []string, f *filter.Filter) {
			if n, ok := firstInt(m[1:]); ok {
				f.MinLength = ptr(n + 1)
			}
		},
	},
	{
		name:    "shorter-than",
		pattern: regexp.MustCompile(`shorter\s+than\s+(\d+)|less\s+than\s+(\d+)\s+char|fewer\s+than\s+(\d+)\s+char`),
		apply: func(m []string, f *filter.Filter) {
			if n, ok := firstInt(m[1:]); ok {
				f.MaxLength = ptr(n - 1)
			}
		},
	},
	{
		name:    "at-least",
		pattern: regexp.MustCompile(`at\s+least\s+(\d+)\s+char|(\d+)\s+or\s+more\s+char`),
		apply: func(m []string, f *filter.Filter) {
			if n, ok := firstInt(m[1:]); ok {
				f.MinLength = ptr(n)
			}
		},
	},
	{
		name:    "at-most",
		pattern: regexp.MustCompile(`at\s+most\s+(\d+)\s+char|(\d+)\s+or\s+fewer\s+char`),
		apply: func(m []string, f *filter.Filter) {
			if n, ok := firstInt(m[1:]); ok {
				f.MaxLength = ptr(n)
			}
		},
	},
	{
		name:    "exactly",
		pattern: regexp.MustCompile(`exactly\s+(\d+)\s+char`),
		apply: func(m []string, f *filter.Filter) {
			if n, ok := firstInt(m[1:]); ok {
				f.MinLength = ptr(n)
				f.MaxLength = ptr(n)
			}
		},
	},
	{
		// the letter/character keyword is optional; a bare letter only
		// matches as a whole word so "containing racecar" fires nothing
		name:    "containing-letter",
		pattern: regexp.MustCompile(`contain(?:s|ing)?\s+(?:the\s+)?(?:letter\s+|character\s+)?(?:'(\w)'|"(\w)"|(\w)\b)`),
		apply: func(m []string, f *filter.Filter) {
			if c, ok := firstCapture(m[1:]); ok {
				f.ContainsCharacter = ptr(c)
			}
		},
	},
	{
		name:    "with-letter",
		pattern: regexp.MustCompile(`with\s+(?:the\s+)?letter\s+'?"?(\w)'?"?`),
		apply:   func(m []string, f *filter.Filter) { f.ContainsCharacter = ptr(m[1]) },
	},
	{
		name:    "first-vowel",
		pattern: regexp.MustCompile(`first\s+vowel`),
		apply:   func(_ []string, f *filter.Filter) { f.ContainsCharacter = ptr("a") },
	},
}

func ptr[T any](v T) *T { return &v }

func intp(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// firstCapture returns the first non-empty capture
func firstCapture(caps []string) (string, bool) {
	for _, c := range caps {
		if c != "" {
			return c, true
		}
	}
	return "", false
}

// firstInt returns the first non-empty capture parsed as an int
func firstInt(caps []string) (int, bool) {
	for _, c := range caps {
		if c == "" {
			continue
		}
		if n, err := strconv.Atoi(c); err == nil {
			return n, true
		}
	}
	return 0, false
}
