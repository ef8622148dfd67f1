package strindex

import (
	"strconv"
	"time"

	"github.com/kailas-cloud/strindex/internal/domain"
	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
	"github.com/kailas-cloud/strindex/internal/domain/nlquery"
)

// String is a stored, analyzed value.
type String struct {
	ID         string
	Value      string
	Properties Properties
	CreatedAt  time.Time
}

// Properties is the analysis computed once when a value is stored.
// Counts are in characters, not bytes.
type Properties struct {
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	SHA256Hash         string
	CharacterFrequency map[rune]int
}

// Filters narrows List results. Nil fields are not applied; set fields are
// combined with AND.
type Filters struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter *rune
}

// Interpretation is what a natural language query was translated to.
type Interpretation struct {
	Original string // trimmed, lowercased query
	Filters  Filters
}

// Ptr returns a pointer to v, for filling Filters.
func Ptr[T any](v T) *T { return &v }

func toFilter(fs Filters) (filter.Filter, error) {
	var f filter.Filter
	if fs.IsPalindrome != nil {
		f = f.WithPalindrome(*fs.IsPalindrome)
	}

	counts := []struct {
		param string
		v     *int
		with  func(filter.Filter, int) filter.Filter
	}{
		{filter.ParamMinLength, fs.MinLength, filter.Filter.WithMinLength},
		{filter.ParamMaxLength, fs.MaxLength, filter.Filter.WithMaxLength},
		{filter.ParamWordCount, fs.WordCount, filter.Filter.WithWordCount},
	}
	for _, c := range counts {
		if c.v == nil {
			continue
		}
		if *c.v < 0 {
			return filter.Filter{}, domain.NewFilterError(c.param, strconv.Itoa(*c.v), "must be a non-negative integer")
		}
		f = c.with(f, *c.v)
	}

	if fs.ContainsCharacter != nil {
		f = f.WithContainsCharacter(*fs.ContainsCharacter)
	}
	return f, nil
}

func fromFilter(f filter.Filter) Filters {
	var fs Filters
	if v, ok := f.IsPalindrome(); ok {
		fs.IsPalindrome = &v
	}
	if v, ok := f.MinLength(); ok {
		fs.MinLength = &v
	}
	if v, ok := f.MaxLength(); ok {
		fs.MaxLength = &v
	}
	if v, ok := f.WordCount(); ok {
		fs.WordCount = &v
	}
	if v, ok := f.ContainsCharacter(); ok {
		fs.ContainsCharacter = &v
	}
	return fs
}

func fromEntry(e *domentry.Entry) String {
	p := e.Properties()
	freq := make(map[rune]int, len(p.CharacterFrequency))
	for r, n := range p.CharacterFrequency {
		freq[r] = n
	}
	return String{
		ID:    e.ID(),
		Value: e.Value(),
		Properties: Properties{
			Length:             p.Length,
			IsPalindrome:       p.IsPalindrome,
			UniqueCharacters:   p.UniqueCharacters,
			WordCount:          p.WordCount,
			SHA256Hash:         p.SHA256Hash,
			CharacterFrequency: freq,
		},
		CreatedAt: e.CreatedAt(),
	}
}

func fromEntries(entries []domentry.Entry) []String {
	out := make([]String, len(entries))
	for i := range entries {
		out[i] = fromEntry(&entries[i])
	}
	return out
}

func fromInterpretation(in nlquery.Interpretation) Interpretation {
	return Interpretation{Original: in.Original, Filters: fromFilter(in.Filter)}
}
