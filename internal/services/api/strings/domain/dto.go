// Package domain holds DTOs for strings http and service contracts
package domain

// CreateInput is the body of a string submission
type CreateInput struct {
	Value string `json:"value" validate:"required,min=1" example:"racecar"`
}

// Properties are the computed attributes of a stored string
type Properties struct {
	Length             int            `json:"length" example:"7"`
	IsPalindrome       bool           `json:"is_palindrome" example:"true"`
	UniqueCharacters   int            `json:"unique_characters" example:"4"`
	WordCount          int            `json:"word_count" example:"1"`
	CharacterFrequency map[string]int `json:"character_frequency_map"`
}

// AnalyzedString is the full representation of a stored string
type AnalyzedString struct {
	ID         string     `json:"id" example:"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"`
	Value      string     `json:"value" example:"racecar"`
	Properties Properties `json:"properties"`
	CreatedAt  string     `json:"created_at" example:"2025-09-03T13:00:00Z"`
}

// ListInput carries the structured query filters for listing.
// Populated from query parameters, so range and single-character
// constraints are enforced by the transport's parser
type ListInput struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// ListResult is the list payload with the echo of applied filters
type ListResult struct {
	Data           []AnalyzedString `json:"data"`
	Count          int              `json:"count" example:"2"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language query was understood
type InterpretedQuery struct {
	Original      string         `json:"original" example:"all single word palindromic strings"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// QueryResult is the natural-language query payload
type QueryResult struct {
	Data             []AnalyzedString `json:"data"`
	Count            int              `json:"count" example:"1"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}
