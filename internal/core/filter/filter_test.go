package filter

import "testing"

type subj struct {
	value      string
	length     int
	palindrome bool
	words      int
}

func (s subj) FilterValue() string      { return s.value }
func (s subj) FilterLength() int        { return s.length }
func (s subj) FilterIsPalindrome() bool { return s.palindrome }
func (s subj) FilterWordCount() int     { return s.words }

func mk(value string, palindrome bool, words int) subj {
	return subj{value: value, length: len([]rune(value)), palindrome: palindrome, words: words}
}

func ptr[T any](v T) *T { return &v }

func TestZeroFilterMatchesAll(t *testing.T) {
	t.Parallel()

	in := []subj{mk("racecar", true, 1), mk("hello world", false, 2)}
	out := Apply(in, Filter{})
	if len(out) != len(in) {
		t.Fatalf("zero filter should keep everything: got %d of %d", len(out), len(in))
	}
	if !(Filter{}).IsZero() {
		t.Fatal("zero filter should report IsZero")
	}
}

func TestConjunction(t *testing.T) {
	t.Parallel()

	in := []subj{
		mk("racecar", true, 1),
		mk("abba", true, 1),
		mk("hello world", false, 2),
		mk("a man a plan", false, 4),
	}

	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"palindromes", Filter{IsPalindrome: ptr(true)}, []string{"racecar", "abba"}},
		{"non palindromes", Filter{IsPalindrome: ptr(false)}, []string{"hello world", "a man a plan"}},
		{"min length", Filter{MinLength: ptr(7)}, []string{"racecar", "hello world", "a man a plan"}},
		{"max length", Filter{MaxLength: ptr(4)}, []string{"abba"}},
		{"word count", Filter{WordCount: ptr(2)}, []string{"hello world"}},
		{"contains char", Filter{ContainsCharacter: ptr("b")}, []string{"abba"}},
		{"palindrome and length", Filter{IsPalindrome: ptr(true), MinLength: ptr(5)}, []string{"racecar"}},
		{"nothing matches", Filter{WordCount: ptr(9)}, nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := Apply(in, tc.f)
			if len(out) != len(tc.want) {
				t.Fatalf("want %d results, got %d", len(tc.want), len(out))
			}
			for i := range out {
				if out[i].value != tc.want[i] {
					t.Fatalf("result %d: want %q, got %q (order must be preserved)", i, tc.want[i], out[i].value)
				}
			}
		})
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	t.Parallel()

	in := []subj{mk("Hello", false, 1)}
	if out := Apply(in, Filter{ContainsCharacter: ptr("h")}); len(out) != 0 {
		t.Fatal("lowercase h should not match Hello")
	}
	if out := Apply(in, Filter{ContainsCharacter: ptr("H")}); len(out) != 1 {
		t.Fatal("uppercase H should match Hello")
	}
}

func TestApplied(t *testing.T) {
	t.Parallel()

	f := Filter{IsPalindrome: ptr(true), MinLength: ptr(3)}
	m := f.Applied()
	if len(m) != 2 {
		t.Fatalf("want 2 applied entries, got %d", len(m))
	}
	if m["is_palindrome"] != true || m["min_length"] != 3 {
		t.Fatalf("applied map wrong: %#v", m)
	}
}
