// Package analyze computes the derived properties of an input string.
// All functions are pure and deterministic; the same input always yields
// the same Analysis
//
// Normalization policy (fixed, tested):
//   - palindrome check folds case (Unicode case folding) but keeps
//     whitespace and punctuation
//   - everything else (length, frequency, containment) is byte/rune exact
package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	perr "lexis/internal/platform/errors"

	"golang.org/x/text/cases"
)

// Analysis is the full set of derived properties for one string
type Analysis struct {
	// ID is the hex SHA-256 of the value bytes, usable as a stable alternate key
	ID string

	Length           int
	IsPalindrome     bool
	UniqueCharacters int
	WordCount        int

	// CharacterFrequency maps each character (as typed, case preserved)
	// to its occurrence count
	CharacterFrequency map[string]int
}

// Analyze computes all properties for value.
// The empty string is a domain error, not a degenerate analysis
func Analyze(value string) (Analysis, error) {
	if value == "" {
		return Analysis{}, perr.Validationf("value must be a non-empty string")
	}

	runes := []rune(value)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return Analysis{
		ID:                 ID(value),
		Length:             len(runes),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		CharacterFrequency: freq,
	}, nil
}

// ID returns the hex SHA-256 digest of value, the alternate lookup key.
// It is exported separately so lookups can be keyed without re-analyzing
func ID(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether the case-folded value reads the same
// reversed. No whitespace or punctuation stripping
func isPalindrome(value string) bool {
	folded := []rune(cases.Fold().String(value))
	for i, j := 0, len(folded)-1; i < j; i, j = i+1, j-1 {
		if folded[i] != folded[j] {
			return false
		}
	}
	return true
}
