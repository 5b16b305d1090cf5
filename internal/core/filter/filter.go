// Package filter applies structured predicates to analyzed strings.
//
// A Filter is a conjunction: every set field must hold for a record to
// pass. The zero Filter matches everything. Application is pure and
// preserves input order
package filter

import "strings"

// Filter is the structured predicate set. Nil fields are "don't care".
// Field names align with the query-parameter and JSON surface
type Filter struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsZero reports whether no predicate is set
func (f Filter) IsZero() bool {
	return f.IsPalindrome == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.WordCount == nil &&
		f.ContainsCharacter == nil
}

// Subject is the view of a record the engine needs. Satisfied by the
// repo's record type without import cycles
type Subject interface {
	FilterValue() string
	FilterLength() int
	FilterIsPalindrome() bool
	FilterWordCount() int
}

// Matches reports whether s satisfies every set predicate.
// ContainsCharacter is case sensitive by contract
func (f Filter) Matches(s Subject) bool {
	if f.IsPalindrome != nil && s.FilterIsPalindrome() != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && s.FilterLength() < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && s.FilterLength() > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && s.FilterWordCount() != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil && !strings.Contains(s.FilterValue(), *f.ContainsCharacter) {
		return false
	}
	return true
}

// Apply returns the subset of subjects matching f, in input order.
// An all-nil filter returns a copy of the input
func Apply[S Subject](subjects []S, f Filter) []S {
	out := make([]S, 0, len(subjects))
	for _, s := range subjects {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Applied lists the names of the set predicates, for echoing back in
// list responses
func (f Filter) Applied() map[string]any {
	m := make(map[string]any, 5)
	if f.IsPalindrome != nil {
		m["is_palindrome"] = *f.IsPalindrome
	}
	if f.MinLength != nil {
		m["min_length"] = *f.MinLength
	}
	if f.MaxLength != nil {
		m["max_length"] = *f.MaxLength
	}
	if f.WordCount != nil {
		m["word_count"] = *f.WordCount
	}
	if f.ContainsCharacter != nil {
		m["contains_character"] = *f.ContainsCharacter
	}
	return m
}
