package nlquery

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
)

func TestInterpret_SingleWord(t *testing.T) {
	in, err := Interpret("Find Single Word strings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Original != "find single word strings" {
		t.Errorf("unexpected original %q", in.Original)
	}
	if v, ok := in.Filter.WordCount(); !ok || v != 1 {
		t.Errorf("word_count: got %v %v", v, ok)
	}
	if _, ok := in.Filter.IsPalindrome(); ok {
		t.Error("is_palindrome must stay unset")
	}
	if _, ok := in.Filter.MinLength(); ok {
		t.Error("min_length must stay unset")
	}
	if _, ok := in.Filter.ContainsCharacter(); ok {
		t.Error("contains_character must stay unset")
	}
}

func TestInterpret_Combined(t *testing.T) {
	in, err := Interpret("  single word palindromic strings longer than 3 containing the letter z  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := in.Filter
	if v, ok := f.IsPalindrome(); !ok || !v {
		t.Errorf("is_palindrome: got %v %v", v, ok)
	}
	if v, ok := f.WordCount(); !ok || v != 1 {
		t.Errorf("word_count: got %v %v", v, ok)
	}
	if v, ok := f.MinLength(); !ok || v != 4 {
		t.Errorf("min_length: got %v %v", v, ok)
	}
	if v, ok := f.ContainsCharacter(); !ok || v != 'z' {
		t.Errorf("contains_character: got %q %v", v, ok)
	}
}

func TestInterpret_Errors(t *testing.T) {
	tests := []struct {
		query string
		want  error
	}{
		{"", domain.ErrUnparseable},
		{"   ", domain.ErrUnparseable},
		{"xyz", domain.ErrUnparseable},
		{"strings longer than ten", domain.ErrUnparseable},
		{"containing the letter 5", domain.ErrUnparseable},
		{"palindromic and non-palindromic", domain.ErrConflictingFilters},
		{"non-palindromic palindrome strings", domain.ErrConflictingFilters},
		{"single word palindromic non-palindromic", domain.ErrConflictingFilters},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := Interpret(tt.query)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInterpret_NonPalindromicAlone(t *testing.T) {
	in, err := Interpret("non-palindromic strings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := in.Filter.IsPalindrome(); !ok || v {
		t.Fatalf("expected is_palindrome=false, got %v %v", v, ok)
	}
}

func TestPalindromeRule(t *testing.T) {
	tests := []struct {
		q      string
		want   bool
		wantOK bool
	}{
		{"palindromic strings", true, true},
		{"strings that are a palindrome", true, true},
		{"non-palindromic strings", false, true},
		{"plain strings", false, false},
	}
	for _, tt := range tests {
		v, ok := PalindromeRule(tt.q, filter.Filter{}).IsPalindrome()
		if ok != tt.wantOK || v != tt.want {
			t.Errorf("PalindromeRule(%q) = %v %v, want %v %v", tt.q, v, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLongerThanRule(t *testing.T) {
	tests := []struct {
		q      string
		want   int
		wantOK bool
	}{
		{"strings longer than 10 characters", 11, true},
		{"longer than 0", 1, true},
		{"longer than   5", 6, true},
		{"longer than", 0, false},
		{"longer than -3", 0, false},
		{"longer than ten", 0, false},
		{"longer than 99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		v, ok := LongerThanRule(tt.q, filter.Filter{}).MinLength()
		if ok != tt.wantOK || v != tt.want {
			t.Errorf("LongerThanRule(%q) = %v %v, want %v %v", tt.q, v, ok, tt.want, tt.wantOK)
		}
	}
}

func TestContainsLetterRule(t *testing.T) {
	tests := []struct {
		q      string
		want   rune
		wantOK bool
	}{
		{"strings containing the letter z", 'z', true},
		{"containing the letter   q please", 'q', true},
		{"containing the letter é", 'é', true},
		{"containing the letter", 0, false},
		{"containing the letter 7", 0, false},
		{"containing the letter ?", 0, false},
	}
	for _, tt := range tests {
		v, ok := ContainsLetterRule(tt.q, filter.Filter{}).ContainsCharacter()
		if ok != tt.wantOK || v != tt.want {
			t.Errorf("ContainsLetterRule(%q) = %q %v, want %q %v", tt.q, v, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFirstVowelRule(t *testing.T) {
	in, err := Interpret("palindromic strings that contain the first vowel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := in.Filter.ContainsCharacter(); !ok || v != FirstVowel {
		t.Fatalf("expected %q, got %q %v", FirstVowel, v, ok)
	}
}

func TestFirstVowelOverridesLetter(t *testing.T) {
	in, err := Interpret("containing the letter z that contain the first vowel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := in.Filter.ContainsCharacter(); v != FirstVowel {
		t.Fatalf("later rule must win, got %q", v)
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		q    string
		want bool
	}{
		{"non-palindromic", false},
		{"non-palindromic non-palindromic", false},
		{"palindromic", false},
		{"palindromic or non-palindromic", true},
		{"non-palindromic vs palindrome", true},
	}
	for _, tt := range tests {
		if got := HasConflict(tt.q); got != tt.want {
			t.Errorf("HasConflict(%q) = %v, want %v", tt.q, got, tt.want)
		}
	}
}
