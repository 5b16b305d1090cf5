package nlquery

import "testing"

func eqInt(t *testing.T, name string, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: want %d, got nil", name, want)
	}
	if *got != want {
		t.Fatalf("%s: want %d, got %d", name, want, *got)
	}
}

func eqBool(t *testing.T, name string, got *bool, want bool) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: want %v, got nil", name, want)
	}
	if *got != want {
		t.Fatalf("%s: want %v, got %v", name, want, *got)
	}
}

func TestTranslateScenarios(t *testing.T) {
	t.Parallel()

	t.Run("single word palindromes", func(t *testing.T) {
		t.Parallel()
		f := Translate("all single word palindromic strings")
		eqBool(t, "is_palindrome", f.IsPalindrome, true)
		eqInt(t, "word_count", f.WordCount, 1)
		if f.MinLength != nil || f.MaxLength != nil || f.ContainsCharacter != nil {
			t.Fatalf("unexpected extra predicates: %#v", f)
		}
	})

	t.Run("longer than is exclusive", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings longer than 10 characters")
		eqInt(t, "min_length", f.MinLength, 11)
	})

	t.Run("shorter than is exclusive", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings shorter than 5 characters")
		eqInt(t, "max_length", f.MaxLength, 4)
	})

	t.Run("at least and at most are inclusive", func(t *testing.T) {
		t.Parallel()
		f := Translate("at least 3 characters and at most 8 characters")
		eqInt(t, "min_length", f.MinLength, 3)
		eqInt(t, "max_length", f.MaxLength, 8)
	})

	t.Run("exactly pins both bounds", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings with exactly 7 characters")
		eqInt(t, "min_length", f.MinLength, 7)
		eqInt(t, "max_length", f.MaxLength, 7)
	})

	t.Run("negated palindrome wins", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings that are not palindromes")
		eqBool(t, "is_palindrome", f.IsPalindrome, false)
	})

	t.Run("containing letter", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings containing the letter z")
		if f.ContainsCharacter == nil || *f.ContainsCharacter != "z" {
			t.Fatalf("want contains z, got %#v", f.ContainsCharacter)
		}
	})

	t.Run("containing without keyword", func(t *testing.T) {
		t.Parallel()
		cases := []string{
			"strings containing 'z'",
			`strings containing "z"`,
			"strings that contain z",
		}
		for _, q := range cases {
			f := Translate(q)
			if f.ContainsCharacter == nil || *f.ContainsCharacter != "z" {
				t.Errorf("%q: want contains z, got %#v", q, f.ContainsCharacter)
			}
		}
	})

	t.Run("containing a whole word fires nothing", func(t *testing.T) {
		t.Parallel()
		if f := Translate("strings containing racecar"); f.ContainsCharacter != nil {
			t.Fatalf("multi-letter word should not capture, got %#v", *f.ContainsCharacter)
		}
	})

	t.Run("first vowel means a", func(t *testing.T) {
		t.Parallel()
		f := Translate("strings containing the first vowel")
		if f.ContainsCharacter == nil || *f.ContainsCharacter != "a" {
			t.Fatalf("want contains a, got %#v", f.ContainsCharacter)
		}
	})

	t.Run("spelled word counts", func(t *testing.T) {
		t.Parallel()
		eqInt(t, "two words", Translate("strings with two words").WordCount, 2)
		eqInt(t, "three words", Translate("strings with three words").WordCount, 3)
	})

	t.Run("numeric word count", func(t *testing.T) {
		t.Parallel()
		eqInt(t, "4 words", Translate("strings with 4 words").WordCount, 4)
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		f := Translate("PALINDROMIC Strings LONGER THAN 2 Characters")
		eqBool(t, "is_palindrome", f.IsPalindrome, true)
		eqInt(t, "min_length", f.MinLength, 3)
	})
}

func TestTranslateNeverFails(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", "   ", "zzzz qqqq blorp", "the weather is nice"} {
		if f := Translate(q); !f.IsZero() {
			t.Errorf("%q: want zero filter, got %#v", q, f)
		}
	}
}
