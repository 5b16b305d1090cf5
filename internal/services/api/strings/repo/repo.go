// Package repo provides keyed in-memory access for strings
package repo

import (
	"context"
	"time"

	"lexis/internal/core/analyze"
	"lexis/internal/modkit/repokit"
	perr "lexis/internal/platform/errors"
)

// Record is the stored form of an analyzed string.
// Records are keyed by ID so value lookups hash first
type Record struct {
	ID                 string
	Value              string
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	CharacterFrequency map[string]int
	CreatedAt          time.Time
}

// Filter subject methods, so the filter engine can run over records

// FilterValue returns the raw value
func (r Record) FilterValue() string { return r.Value }

// FilterLength returns the rune length
func (r Record) FilterLength() int { return r.Length }

// FilterIsPalindrome returns the palindrome flag
func (r Record) FilterIsPalindrome() bool { return r.IsPalindrome }

// FilterWordCount returns the word count
func (r Record) FilterWordCount() int { return r.WordCount }

// Repo defines the repository contract for strings
type Repo interface {
	Insert(ctx context.Context, rec Record) error
	GetByValue(ctx context.Context, value string) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, value string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Count(ctx context.Context) int
}

type (
	// Mem implements the Repo interface over the keyed memory seam
	Mem struct{}

	// queries holds the keyed access methods
	queries struct{ k repokit.Keyed }
)

// NewMem creates a new in-memory repository binder
func NewMem() repokit.Binder[Repo] { return Mem{} }

// Bind binds a keyed seam to the Repo implementation
func (Mem) Bind(k repokit.Keyed) Repo { return &queries{k: k} }

func (r *queries) Insert(ctx context.Context, rec Record) error {
	if err := r.k.Insert(ctx, rec.ID, rec); err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return perr.Conflictf("string already exists")
		}
		return err
	}
	return nil
}

func (r *queries) GetByValue(ctx context.Context, value string) (Record, error) {
	return r.GetByID(ctx, analyze.ID(value))
}

func (r *queries) GetByID(ctx context.Context, id string) (Record, error) {
	v, ok := r.k.Get(ctx, id)
	if !ok {
		return Record{}, perr.NotFoundf("string not found")
	}
	rec, ok := v.(Record)
	if !ok {
		return Record{}, perr.Internalf("unexpected record type %T", v)
	}
	return rec, nil
}

// Delete removes and returns the stored record for value
func (r *queries) Delete(ctx context.Context, value string) (Record, error) {
	v, ok := r.k.Delete(ctx, analyze.ID(value))
	if !ok {
		return Record{}, perr.NotFoundf("string not found")
	}
	rec, ok := v.(Record)
	if !ok {
		return Record{}, perr.Internalf("unexpected record type %T", v)
	}
	return rec, nil
}

// List returns all records in insertion order
func (r *queries) List(ctx context.Context) ([]Record, error) {
	snap := r.k.Snapshot(ctx)
	out := make([]Record, 0, len(snap))
	for _, v := range snap {
		rec, ok := v.(Record)
		if !ok {
			return nil, perr.Internalf("unexpected record type %T", v)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context) int { return r.k.Len(ctx) }
