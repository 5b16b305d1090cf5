// Package http provides http transport for strings
package http

import (
	stdhttp "net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"lexis/internal/modkit/httpkit"
	perr "lexis/internal/platform/errors"
	"lexis/internal/services/api/strings/domain"
	svc "lexis/internal/services/api/strings/service"
)

// Register mounts strings endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/filter-by-natural-language", h.query)
	httpkit.Get(r, "/{value}", h.get)
	httpkit.Delete(r, "/{value}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /strings Strings stringsCreate
// @Summary Analyze and store a string
// @Tags Strings
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Value to store"
// @Success 201 {object} domain.AnalyzedString "created"
// @Failure 409 {object} httpkit.Envelope "already stored"
// @Router /strings [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route GET /strings Strings stringsList
// @Summary List stored strings with structured filters
// @Tags Strings
// @Produce json
// @Param is_palindrome query bool false "palindrome flag"
// @Param min_length query int false "minimum length inclusive"
// @Param max_length query int false "maximum length inclusive"
// @Param word_count query int false "exact word count"
// @Param contains_character query string false "substring, case sensitive"
// @Success 200 {object} domain.ListResult "ok"
// @Router /strings [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := parseListInput(r.URL.Query())
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /strings/filter-by-natural-language Strings stringsQuery
// @Summary List stored strings matching a natural-language query
// @Tags Strings
// @Produce json
// @Param query query string true "natural-language filter phrase"
// @Success 200 {object} domain.QueryResult "ok"
// @Router /strings/filter-by-natural-language [get]
func (h *handlers) query(r *stdhttp.Request) (any, error) {
	q := r.URL.Query().Get("query")
	if q == "" {
		return nil, perr.InvalidArgf("query parameter is required")
	}
	return h.svc.Query(r.Context(), q)
}

// swagger:route GET /strings/{value} Strings stringsGet
// @Summary Fetch a stored string by its exact value
// @Tags Strings
// @Produce json
// @Param value path string true "exact stored value"
// @Success 200 {object} domain.AnalyzedString "ok"
// @Failure 404 {object} httpkit.Envelope "not stored"
// @Router /strings/{value} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	value, err := pathValue(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), value)
}

// swagger:route DELETE /strings/{value} Strings stringsDelete
// @Summary Delete a stored string by its exact value
// @Tags Strings
// @Param value path string true "exact stored value"
// @Success 204 "deleted"
// @Failure 404 {object} httpkit.Envelope "not stored"
// @Router /strings/{value} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	value, err := pathValue(r)
	if err != nil {
		return nil, err
	}
	if _, err := h.svc.Delete(r.Context(), value); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// pathValue extracts and unescapes the {value} segment so values with
// encoded spaces round trip
func pathValue(r *stdhttp.Request) (string, error) {
	raw := httpkit.Param(r, "value")
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", perr.InvalidArgf("malformed value segment")
	}
	if value == "" {
		return "", perr.InvalidArgf("value segment is required")
	}
	return value, nil
}

// parseListInput maps query parameters onto the structured filter input.
// Unknown parameters are ignored; malformed known ones are rejected
func parseListInput(q url.Values) (domain.ListInput, error) {
	var in domain.ListInput

	if raw := q.Get("is_palindrome"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return in, perr.InvalidArgf("is_palindrome must be a boolean, got %q", raw)
		}
		in.IsPalindrome = &b
	}
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"min_length", &in.MinLength},
		{"max_length", &in.MaxLength},
		{"word_count", &in.WordCount},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return in, perr.InvalidArgf("%s must be a non-negative integer, got %q", p.name, raw)
		}
		*p.dst = &n
	}
	if raw := q.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) != 1 {
			return in, perr.InvalidArgf("contains_character must be a single character, got %q", raw)
		}
		in.ContainsCharacter = &raw
	}
	return in, nil
}
