// Package service contains strings workflows
package service

import (
	"context"
	"time"

	"lexis/internal/core/analyze"
	"lexis/internal/core/filter"
	"lexis/internal/core/nlquery"
	"lexis/internal/modkit/repokit"
	"lexis/internal/services/api/strings/domain"
	"lexis/internal/services/api/strings/repo"
)

// Service defines the service contract for strings
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	// now is swappable in tests
	now func() time.Time
}

// New creates a new strings service bound to the keyed seam
func New(k repokit.Keyed, binder repokit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("strings.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo: repokit.MustBind(binder, k),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create analyzes and stores a new string.
// Duplicate values conflict; the analysis is computed once at insert
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.AnalyzedString, error) {
	a, err := analyze.Analyze(in.Value)
	if err != nil {
		return domain.AnalyzedString{}, err
	}
	rec := repo.Record{
		ID:                 a.ID,
		Value:              in.Value,
		Length:             a.Length,
		IsPalindrome:       a.IsPalindrome,
		UniqueCharacters:   a.UniqueCharacters,
		WordCount:          a.WordCount,
		CharacterFrequency: a.CharacterFrequency,
		CreatedAt:          s.now(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return domain.AnalyzedString{}, err
	}
	return toDTO(rec), nil
}

// Get fetches a stored string by its exact value
func (s *Svc) Get(ctx context.Context, value string) (domain.AnalyzedString, error) {
	rec, err := s.Repo.GetByValue(ctx, value)
	if err != nil {
		return domain.AnalyzedString{}, err
	}
	return toDTO(rec), nil
}

// GetByID fetches a stored string by its digest id
func (s *Svc) GetByID(ctx context.Context, id string) (domain.AnalyzedString, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return domain.AnalyzedString{}, err
	}
	return toDTO(rec), nil
}

// List returns stored strings matching the structured filters,
// in insertion order, echoing the applied predicates
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	f := filter.Filter{
		IsPalindrome:      in.IsPalindrome,
		MinLength:         in.MinLength,
		MaxLength:         in.MaxLength,
		WordCount:         in.WordCount,
		ContainsCharacter: in.ContainsCharacter,
	}
	recs, err := s.Repo.List(ctx)
	if err != nil {
		return domain.ListResult{}, err
	}
	matched := filter.Apply(recs, f)
	return domain.ListResult{
		Data:           toDTOs(matched),
		Count:          len(matched),
		FiltersApplied: f.Applied(),
	}, nil
}

// Query translates a natural-language query and lists the matches.
// Translation is total, so an unrecognized query returns everything
// with an empty parsed_filters echo
func (s *Svc) Query(ctx context.Context, query string) (domain.QueryResult, error) {
	f := nlquery.Translate(query)
	recs, err := s.Repo.List(ctx)
	if err != nil {
		return domain.QueryResult{}, err
	}
	matched := filter.Apply(recs, f)
	return domain.QueryResult{
		Data:  toDTOs(matched),
		Count: len(matched),
		InterpretedQuery: domain.InterpretedQuery{
			Original:      query,
			ParsedFilters: f.Applied(),
		},
	}, nil
}

// Delete removes a stored string by its exact value and returns it
func (s *Svc) Delete(ctx context.Context, value string) (domain.AnalyzedString, error) {
	rec, err := s.Repo.Delete(ctx, value)
	if err != nil {
		return domain.AnalyzedString{}, err
	}
	return toDTO(rec), nil
}

// Count reports how many strings are stored
func (s *Svc) Count(ctx context.Context) int { return s.Repo.Count(ctx) }

func toDTO(rec repo.Record) domain.AnalyzedString {
	return domain.AnalyzedString{
		ID:    rec.ID,
		Value: rec.Value,
		Properties: domain.Properties{
			Length:             rec.Length,
			IsPalindrome:       rec.IsPalindrome,
			UniqueCharacters:   rec.UniqueCharacters,
			WordCount:          rec.WordCount,
			CharacterFrequency: rec.CharacterFrequency,
		},
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

func toDTOs(recs []repo.Record) []domain.AnalyzedString {
	out := make([]domain.AnalyzedString, 0, len(recs))
	for _, r := range recs {
		out = append(out, toDTO(r))
	}
	return out
}
