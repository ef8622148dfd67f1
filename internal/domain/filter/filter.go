package filter

import (
	"strconv"
	"unicode/utf8"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/entry"
)

// Filter parameter names.
const (
	ParamIsPalindrome      = "is_palindrome"
	ParamMinLength         = "min_length"
	ParamMaxLength         = "max_length"
	ParamWordCount         = "word_count"
	ParamContainsCharacter = "contains_character"
)

// Filter is a set of optional predicates combined with AND.
// The zero value matches every entry.
type Filter struct {
	isPalindrome      *bool
	minLength         *int
	maxLength         *int
	wordCount         *int
	containsCharacter *rune
}

// Parse builds a Filter from raw string parameters. Unknown keys are ignored.
// A recognized key whose value does not parse into its type is a
// *domain.FilterError; nothing is coerced.
func Parse(params map[string]string) (Filter, error) {
	var f Filter

	if raw, ok := params[ParamIsPalindrome]; ok {
		switch raw {
		case "true":
			f = f.WithPalindrome(true)
		case "false":
			f = f.WithPalindrome(false)
		default:
			return Filter{}, domain.NewFilterError(ParamIsPalindrome, raw, "must be true or false")
		}
	}

	for _, key := range []string{ParamMinLength, ParamMaxLength, ParamWordCount} {
		raw, ok := params[key]
		if !ok {
			continue
		}
		n, err := parseCount(raw)
		if err != nil {
			return Filter{}, domain.NewFilterError(key, raw, "must be a non-negative integer")
		}
		switch key {
		case ParamMinLength:
			f = f.WithMinLength(n)
		case ParamMaxLength:
			f = f.WithMaxLength(n)
		case ParamWordCount:
			f = f.WithWordCount(n)
		}
	}

	if raw, ok := params[ParamContainsCharacter]; ok {
		if utf8.RuneCountInString(raw) != 1 {
			return Filter{}, domain.NewFilterError(ParamContainsCharacter, raw, "must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(raw)
		f = f.WithContainsCharacter(r)
	}

	return f, nil
}

func parseCount(raw string) (int, error) {
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err //nolint:wrapcheck // caller converts to FilterError
	}
	if n > uint64(maxInt) {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

// WithPalindrome returns a copy requiring is_palindrome == v.
func (f Filter) WithPalindrome(v bool) Filter {
	f.isPalindrome = &v
	return f
}

// WithMinLength returns a copy requiring length >= n.
func (f Filter) WithMinLength(n int) Filter {
	f.minLength = &n
	return f
}

// WithMaxLength returns a copy requiring length <= n.
func (f Filter) WithMaxLength(n int) Filter {
	f.maxLength = &n
	return f
}

// WithWordCount returns a copy requiring word_count == n.
func (f Filter) WithWordCount(n int) Filter {
	f.wordCount = &n
	return f
}

// WithContainsCharacter returns a copy requiring r to occur in the value.
func (f Filter) WithContainsCharacter(r rune) Filter {
	f.containsCharacter = &r
	return f
}

// IsPalindrome returns the palindrome predicate, if set.
func (f Filter) IsPalindrome() (bool, bool) { return deref(f.isPalindrome) }

// MinLength returns the minimum length predicate, if set.
func (f Filter) MinLength() (int, bool) { return deref(f.minLength) }

// MaxLength returns the maximum length predicate, if set.
func (f Filter) MaxLength() (int, bool) { return deref(f.maxLength) }

// WordCount returns the word count predicate, if set.
func (f Filter) WordCount() (int, bool) { return deref(f.wordCount) }

// ContainsCharacter returns the character predicate, if set.
func (f Filter) ContainsCharacter() (rune, bool) { return deref(f.containsCharacter) }

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.isPalindrome == nil && f.minLength == nil && f.maxLength == nil &&
		f.wordCount == nil && f.containsCharacter == nil
}

// Matches reports whether e satisfies every set predicate.
func (f Filter) Matches(e *entry.Entry) bool {
	p := e.Properties()
	if v, ok := f.IsPalindrome(); ok && p.IsPalindrome != v {
		return false
	}
	if n, ok := f.MinLength(); ok && p.Length < n {
		return false
	}
	if n, ok := f.MaxLength(); ok && p.Length > n {
		return false
	}
	if n, ok := f.WordCount(); ok && p.WordCount != n {
		return false
	}
	if r, ok := f.ContainsCharacter(); ok && !p.Contains(r) {
		return false
	}
	return true
}

// Apply returns the entries matching f, preserving order.
func Apply(entries []entry.Entry, f Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}
	out := make([]entry.Entry, 0, len(entries))
	for i := range entries {
		if f.Matches(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
