package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/entry"
)

func mustEntry(t *testing.T, v string) entry.Entry {
	t.Helper()
	e, err := entry.New(v, time.Unix(0, 0), 0)
	if err != nil {
		t.Fatalf("entry %q: %v", v, err)
	}
	return e
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsEmpty() {
		t.Fatal("expected empty filter")
	}
}

func TestParse_AllParams(t *testing.T) {
	f, err := Parse(map[string]string{
		ParamIsPalindrome:      "false",
		ParamMinLength:         "2",
		ParamMaxLength:         "10",
		ParamWordCount:         "0",
		ParamContainsCharacter: "é",
		"unknown":              "ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := f.IsPalindrome(); !ok || v {
		t.Errorf("is_palindrome: got %v %v", v, ok)
	}
	if v, ok := f.MinLength(); !ok || v != 2 {
		t.Errorf("min_length: got %v %v", v, ok)
	}
	if v, ok := f.MaxLength(); !ok || v != 10 {
		t.Errorf("max_length: got %v %v", v, ok)
	}
	if v, ok := f.WordCount(); !ok || v != 0 {
		t.Errorf("word_count: got %v %v", v, ok)
	}
	if v, ok := f.ContainsCharacter(); !ok || v != 'é' {
		t.Errorf("contains_character: got %q %v", v, ok)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		param string
		value string
	}{
		{ParamIsPalindrome, "yes"},
		{ParamIsPalindrome, "TRUE"},
		{ParamIsPalindrome, ""},
		{ParamMinLength, "abc"},
		{ParamMinLength, "-1"},
		{ParamMaxLength, "1.5"},
		{ParamWordCount, " 1"},
		{ParamWordCount, "99999999999999999999999"},
		{ParamContainsCharacter, ""},
		{ParamContainsCharacter, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.param+"="+tt.value, func(t *testing.T) {
			_, err := Parse(map[string]string{tt.param: tt.value})
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var fe *domain.FilterError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FilterError, got %T", err)
			}
			if fe.Param != tt.param || fe.Value != tt.value {
				t.Errorf("unexpected error fields: %+v", fe)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	racecar := mustEntry(t, "racecar")
	hello := mustEntry(t, "hello world")

	tests := []struct {
		name string
		f    Filter
		e    entry.Entry
		want bool
	}{
		{"empty matches all", Filter{}, hello, true},
		{"palindrome", Filter{}.WithPalindrome(true), racecar, true},
		{"not palindrome", Filter{}.WithPalindrome(true), hello, false},
		{"min inclusive", Filter{}.WithMinLength(7), racecar, true},
		{"min excluded", Filter{}.WithMinLength(8), racecar, false},
		{"max inclusive", Filter{}.WithMaxLength(7), racecar, true},
		{"max excluded", Filter{}.WithMaxLength(6), racecar, false},
		{"word count", Filter{}.WithWordCount(2), hello, true},
		{"word count mismatch", Filter{}.WithWordCount(1), hello, false},
		{"contains", Filter{}.WithContainsCharacter('w'), hello, true},
		{"contains case sensitive", Filter{}.WithContainsCharacter('W'), hello, false},
		{"min above max", Filter{}.WithMinLength(10).WithMaxLength(5), hello, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Matches(&tt.e); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApply_AND(t *testing.T) {
	entries := []entry.Entry{
		mustEntry(t, "racecar"),
		mustEntry(t, "level"),
		mustEntry(t, "noon"),
		mustEntry(t, "hello"),
	}

	f := Filter{}.WithPalindrome(true).WithMinLength(5)
	got := Apply(entries, f)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Value() != "racecar" || got[1].Value() != "level" {
		t.Fatalf("order not preserved: %q, %q", got[0].Value(), got[1].Value())
	}

	if got := Apply(entries, Filter{}); len(got) != len(entries) {
		t.Fatalf("empty filter must return everything, got %d", len(got))
	}
}

func TestWith_DoesNotMutate(t *testing.T) {
	base := Filter{}.WithMinLength(1)
	_ = base.WithMinLength(5)
	if v, _ := base.MinLength(); v != 1 {
		t.Fatalf("With* must return a copy, base changed to %d", v)
	}
}
