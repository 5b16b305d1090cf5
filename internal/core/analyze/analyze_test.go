package analyze

import (
	"testing"

	perr "lexis/internal/platform/errors"
)

func TestAnalyzeBasics(t *testing.T) {
	t.Parallel()

	a, err := Analyze("racecar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Length != 7 {
		t.Fatalf("length: want 7, got %d", a.Length)
	}
	if !a.IsPalindrome {
		t.Fatal("racecar should be a palindrome")
	}
	if a.WordCount != 1 {
		t.Fatalf("word count: want 1, got %d", a.WordCount)
	}
	if a.UniqueCharacters != 4 {
		t.Fatalf("unique characters: want 4 (r a c e), got %d", a.UniqueCharacters)
	}
	if a.CharacterFrequency["r"] != 2 || a.CharacterFrequency["a"] != 2 || a.CharacterFrequency["c"] != 2 || a.CharacterFrequency["e"] != 1 {
		t.Fatalf("frequency map wrong: %#v", a.CharacterFrequency)
	}
	if len(a.ID) != 64 {
		t.Fatalf("id should be 64 hex chars, got %d", len(a.ID))
	}
}

func TestAnalyzePalindromeCaseFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"Racecar", true},
		{"Aba", true},
		{"ab", false},
		{"A man a plan", false}, // spaces are significant
		{"x", true},
		{"12321", true},
	}
	for _, tc := range cases {
		a, err := Analyze(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if a.IsPalindrome != tc.want {
			t.Errorf("%q: palindrome want %v, got %v", tc.in, tc.want, a.IsPalindrome)
		}
	}
}

func TestAnalyzeWordCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"hello world", 2},
		{"  padded   out  ", 2},
		{"one", 1},
		{"a b c", 3},
		{"\ttabs\nand\nnewlines", 3},
	}
	for _, tc := range cases {
		a, err := Analyze(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if a.WordCount != tc.want {
			t.Errorf("%q: word count want %d, got %d", tc.in, tc.want, a.WordCount)
		}
	}
}

func TestAnalyzeUnicode(t *testing.T) {
	t.Parallel()

	a, err := Analyze("héllo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Length != 5 {
		t.Fatalf("rune length: want 5, got %d", a.Length)
	}
	if a.CharacterFrequency["é"] != 1 {
		t.Fatalf("frequency should key on runes: %#v", a.CharacterFrequency)
	}
}

func TestAnalyzeEmptyRejected(t *testing.T) {
	t.Parallel()

	_, err := Analyze("")
	if err == nil {
		t.Fatal("empty value should be rejected")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestIDStable(t *testing.T) {
	t.Parallel()

	if ID("abc") != ID("abc") {
		t.Fatal("ID must be deterministic")
	}
	if ID("abc") == ID("abd") {
		t.Fatal("distinct values must hash differently")
	}
	// sha256("abc") well-known vector
	if got := ID("abc"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("unexpected digest: %s", got)
	}
}
