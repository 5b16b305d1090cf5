// Package nlquery translates small natural-language phrases into
// structured filters via an ordered rule table.
//
// Translation is total: unrecognized input yields the zero filter
// (match everything) rather than an error, so a typo never turns into
// a failed request
package nlquery

import (
	"strings"

	"lexis/internal/core/filter"
)

// Translate maps query to a structured filter. Matching is
// case-insensitive and rules accumulate left to right over the table
func Translate(query string) filter.Filter {
	q := strings.ToLower(strings.TrimSpace(query))

	var f filter.Filter
	if q == "" {
		return f
	}
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(q); m != nil {
			r.apply(m, &f)
		}
	}
	return f
}
