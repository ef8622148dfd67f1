package chi

import (
	"time"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
	"github.com/kailas-cloud/strindex/internal/domain/nlquery"
)

// createdAtLayout is RFC 3339 with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeInvalidInput       ErrorCode = "invalid_input"
	CodeInvalidType        ErrorCode = "invalid_type"
	CodeAlreadyExists      ErrorCode = "already_exists"
	CodeNotFound           ErrorCode = "not_found"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeUnparseableQuery   ErrorCode = "unparseable_query"
	CodeConflictingFilters ErrorCode = "conflicting_filters"
	CodeRateLimited        ErrorCode = "rate_limited"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CreateRequest is the body of POST /strings.
type CreateRequest struct {
	Value string `json:"value"`
}

// PropertiesResponse is the wire form of analysis.Properties.
type PropertiesResponse struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// EntryResponse is the wire form of a stored entry.
type EntryResponse struct {
	ID         string             `json:"id"`
	Value      string             `json:"value"`
	Properties PropertiesResponse `json:"properties"`
	CreatedAt  string             `json:"created_at"`
}

// ListResponse is the body of GET /strings.
type ListResponse struct {
	Data           []EntryResponse `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied map[string]any  `json:"filters_applied"`
}

// ParsedFilters echoes the filters derived from a natural-language query.
// Unset filters are rendered as null.
type ParsedFilters struct {
	IsPalindrome      *bool   `json:"is_palindrome"`
	WordCount         *int    `json:"word_count"`
	MinLength         *int    `json:"min_length"`
	MaxLength         *int    `json:"max_length,omitempty"`
	ContainsCharacter *string `json:"contains_character"`
}

// InterpretedQuery pairs the normalized query with its filters.
type InterpretedQuery struct {
	Original      string        `json:"original"`
	ParsedFilters ParsedFilters `json:"parsed_filters"`
}

// NaturalLanguageResponse is the body of GET /strings/filter-by-natural-language.
type NaturalLanguageResponse struct {
	Data             []EntryResponse  `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Entries int               `json:"entries"`
}

// EntryToResponse converts a stored entry to its wire form.
func EntryToResponse(e *domentry.Entry) EntryResponse {
	p := e.Properties()
	freq := make(map[string]int, len(p.CharacterFrequency))
	for r, n := range p.CharacterFrequency {
		freq[string(r)] = n
	}
	return EntryResponse{
		ID:    e.ID(),
		Value: e.Value(),
		Properties: PropertiesResponse{
			Length:                p.Length,
			IsPalindrome:          p.IsPalindrome,
			UniqueCharacters:      p.UniqueCharacters,
			WordCount:             p.WordCount,
			SHA256Hash:            p.SHA256Hash,
			CharacterFrequencyMap: freq,
		},
		CreatedAt: formatCreatedAt(e.CreatedAt()),
	}
}

func entriesToResponse(entries []domentry.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = EntryToResponse(&entries[i])
	}
	return out
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

// filtersApplied renders the set predicates of f with their typed values.
func filtersApplied(f filter.Filter) map[string]any {
	out := make(map[string]any)
	if v, ok := f.IsPalindrome(); ok {
		out[filter.ParamIsPalindrome] = v
	}
	if v, ok := f.MinLength(); ok {
		out[filter.ParamMinLength] = v
	}
	if v, ok := f.MaxLength(); ok {
		out[filter.ParamMaxLength] = v
	}
	if v, ok := f.WordCount(); ok {
		out[filter.ParamWordCount] = v
	}
	if v, ok := f.ContainsCharacter(); ok {
		out[filter.ParamContainsCharacter] = string(v)
	}
	return out
}

// InterpretationToResponse converts a translated query to its wire form.
func InterpretationToResponse(in nlquery.Interpretation) InterpretedQuery {
	var pf ParsedFilters
	if v, ok := in.Filter.IsPalindrome(); ok {
		pf.IsPalindrome = &v
	}
	if v, ok := in.Filter.WordCount(); ok {
		pf.WordCount = &v
	}
	if v, ok := in.Filter.MinLength(); ok {
		pf.MinLength = &v
	}
	if v, ok := in.Filter.MaxLength(); ok {
		pf.MaxLength = &v
	}
	if v, ok := in.Filter.ContainsCharacter(); ok {
		s := string(v)
		pf.ContainsCharacter = &s
	}
	return InterpretedQuery{Original: in.Original, ParsedFilters: pf}
}
