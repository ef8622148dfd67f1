// Package analysis derives the structural properties of a string.
//
// Every count operates on Unicode scalar values, so a multi-byte character
// counts once. The content hash covers the raw UTF-8 bytes and is the only
// property used for identity.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Properties is the immutable analysis result for a single value.
type Properties struct {
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	SHA256Hash         string
	CharacterFrequency map[rune]int
}

// Analyze computes Properties for value. It never fails; callers reject empty
// input before calling it.
func Analyze(value string) Properties {
	freq := make(map[rune]int)
	length := 0
	for _, r := range value {
		freq[r]++
		length++
	}

	return Properties{
		Length:             length,
		IsPalindrome:       IsPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		SHA256Hash:         ContentHash(value),
		CharacterFrequency: freq,
	}
}

// ContentHash returns the lowercase hex SHA-256 of the raw bytes of value.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// IsPalindrome reports whether the lowercased value reads the same reversed.
// Whitespace and punctuation are compared like any other character.
func IsPalindrome(value string) bool {
	runes := []rune(strings.ToLower(value))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// Contains reports whether r occurs in the analyzed value.
func (p Properties) Contains(r rune) bool {
	return p.CharacterFrequency[r] > 0
}
