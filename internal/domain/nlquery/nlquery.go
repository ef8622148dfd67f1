// Package nlquery translates short English phrases into a filter.Filter.
//
// It is a fixed, ordered list of substring rules, not a parser. Each rule
// looks at the normalized query on its own and may set one predicate; later
// rules overwrite earlier ones for the same predicate.
package nlquery

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
)

// Trigger phrases, matched against the lowercased query.
const (
	PhraseNonPalindromic = "non-palindromic"
	PhrasePalindromic    = "palindromic"
	PhrasePalindrome     = "palindrome"
	PhraseSingleWord     = "single word"
	PhraseLongerThan     = "longer than"
	PhraseContainsLetter = "containing the letter"
	PhraseFirstVowel     = "contain the first vowel"
)

// FirstVowel is what "the first vowel" resolves to. The query never names a
// target string, so this is a fixed shortcut rather than vowel detection.
const FirstVowel = 'a'

// Interpretation is a successfully translated query.
type Interpretation struct {
	// Original is the normalized (trimmed, lowercased) query text.
	Original string
	Filter   filter.Filter
}

// Rule inspects the normalized query and returns f with at most one more predicate set.
type Rule func(q string, f filter.Filter) filter.Filter

// Rules are applied in order. Only the palindrome rule depends on order
// internally (negation is checked first).
var Rules = []Rule{
	PalindromeRule,
	SingleWordRule,
	LongerThanRule,
	ContainsLetterRule,
	FirstVowelRule,
}

// Normalize lowercases and trims the query.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Interpret translates text into a filter.
// It returns domain.ErrUnparseable when the query is empty or no rule fires,
// and domain.ErrConflictingFilters when both palindrome polarities appear.
// The conflict check wins over any other parsed predicate.
func Interpret(text string) (Interpretation, error) {
	q := Normalize(text)
	if q == "" {
		return Interpretation{}, fmt.Errorf("empty query: %w", domain.ErrUnparseable)
	}

	var f filter.Filter
	for _, rule := range Rules {
		f = rule(q, f)
	}

	if HasConflict(q) {
		return Interpretation{}, fmt.Errorf("%q: %w", q, domain.ErrConflictingFilters)
	}
	if f.IsEmpty() {
		return Interpretation{}, fmt.Errorf("%q: %w", q, domain.ErrUnparseable)
	}

	return Interpretation{Original: q, Filter: f}, nil
}

// HasConflict reports whether q asserts both palindrome polarities.
// "non-palindromic" itself contains "palindromic", so the positive phrase only
// counts when it still occurs once every negated phrase is removed.
func HasConflict(q string) bool {
	if !strings.Contains(q, PhraseNonPalindromic) {
		return false
	}
	return assertsPalindrome(strings.ReplaceAll(q, PhraseNonPalindromic, " "))
}

func assertsPalindrome(q string) bool {
	return strings.Contains(q, PhrasePalindromic) || strings.Contains(q, PhrasePalindrome)
}

// PalindromeRule sets is_palindrome=false for the negated phrase, otherwise
// is_palindrome=true when either positive phrase is present.
func PalindromeRule(q string, f filter.Filter) filter.Filter {
	switch {
	case strings.Contains(q, PhraseNonPalindromic):
		return f.WithPalindrome(false)
	case assertsPalindrome(q):
		return f.WithPalindrome(true)
	}
	return f
}

// SingleWordRule sets word_count=1.
func SingleWordRule(q string, f filter.Filter) filter.Filter {
	if strings.Contains(q, PhraseSingleWord) {
		return f.WithWordCount(1)
	}
	return f
}

// LongerThanRule sets min_length=N+1 for "longer than N". The first token
// after the phrase must be an unsigned integer, otherwise nothing is set.
func LongerThanRule(q string, f filter.Filter) filter.Filter {
	_, after, ok := strings.Cut(q, PhraseLongerThan)
	if !ok {
		return f
	}
	tokens := strings.Fields(after)
	if len(tokens) == 0 {
		return f
	}
	n, err := strconv.ParseUint(tokens[0], 10, 0)
	if err != nil || n >= uint64(^uint(0)>>1) {
		return f
	}
	return f.WithMinLength(int(n) + 1)
}

// ContainsLetterRule sets contains_character to the first character after
// "containing the letter" when that character is alphabetic.
func ContainsLetterRule(q string, f filter.Filter) filter.Filter {
	_, after, ok := strings.Cut(q, PhraseContainsLetter)
	if !ok {
		return f
	}
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(after))
	if size == 0 || !unicode.IsLetter(r) {
		return f
	}
	return f.WithContainsCharacter(r)
}

// FirstVowelRule sets contains_character to FirstVowel.
func FirstVowelRule(q string, f filter.Filter) filter.Filter {
	if strings.Contains(q, PhraseFirstVowel) {
		return f.WithContainsCharacter(FirstVowel)
	}
	return f
}
