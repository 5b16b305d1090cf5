package repo

import (
	"context"
	"testing"
	"time"

	"lexis/internal/core/analyze"
	perr "lexis/internal/platform/errors"
	"lexis/internal/platform/store"
)

func mkRecord(t *testing.T, value string) Record {
	t.Helper()
	a, err := analyze.Analyze(value)
	if err != nil {
		t.Fatalf("analyze %q: %v", value, err)
	}
	return Record{
		ID:                 a.ID,
		Value:              value,
		Length:             a.Length,
		IsPalindrome:       a.IsPalindrome,
		UniqueCharacters:   a.UniqueCharacters,
		WordCount:          a.WordCount,
		CharacterFrequency: a.CharacterFrequency,
		CreatedAt:          time.Now().UTC(),
	}
}

func newRepo() Repo { return NewMem().Bind(store.NewMemory(0)) }

func TestInsertAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepo()

	rec := mkRecord(t, "racecar")
	if err := r.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := r.GetByValue(ctx, "racecar")
	if err != nil {
		t.Fatalf("get by value: %v", err)
	}
	if got.Value != "racecar" || got.ID != rec.ID {
		t.Fatalf("wrong record back: %#v", got)
	}

	byID, err := r.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Value != "racecar" {
		t.Fatalf("wrong record by id: %#v", byID)
	}
}

func TestInsertDuplicateConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepo()

	rec := mkRecord(t, "abba")
	if err := r.Insert(ctx, rec); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := r.Insert(ctx, rec)
	if err == nil {
		t.Fatal("duplicate insert should fail")
	}
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepo()

	_, err := r.GetByValue(ctx, "missing")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepo()

	if err := r.Insert(ctx, mkRecord(t, "hello")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	gone, err := r.Delete(ctx, "hello")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone.Value != "hello" {
		t.Fatalf("delete should return the removed record, got %#v", gone)
	}
	if _, err := r.Delete(ctx, "hello"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
	if r.Count(ctx) != 0 {
		t.Fatalf("count after delete: want 0, got %d", r.Count(ctx))
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepo()

	for _, v := range []string{"one", "two", "three"} {
		if err := r.Insert(ctx, mkRecord(t, v)); err != nil {
			t.Fatalf("insert %q: %v", v, err)
		}
	}
	out, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(out) != len(want) {
		t.Fatalf("want %d records, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i].Value != want[i] {
			t.Fatalf("record %d: want %q, got %q", i, want[i], out[i].Value)
		}
	}
}
