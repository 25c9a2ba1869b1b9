package service

import (
	"strings"
)

// NameMatcher matches free-text input against name transliterations with
// fuzzy matching support, so "ar rahman" finds "Ar Rahmaan".
type NameMatcher struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewNameMatcher creates a new NameMatcher.
func NewNameMatcher() *NameMatcher {
	return &NameMatcher{
		threshold: 0.8, // 80% similarity required
	}
}

// Match checks if the input matches the transliteration.
func (m *NameMatcher) Match(input, transliteration string) bool {
	return m.Score(input, transliteration) >= m.threshold
}

// Score returns the similarity of the normalized strings (1.0 for an exact match).
func (m *NameMatcher) Score(input, transliteration string) float64 {
	a := m.normalize(input)
	b := m.normalize(transliteration)

	if a == b {
		return 1.0
	}

	return m.similarity(a, b)
}

// normalize normalizes a transliteration for comparison.
func (m *NameMatcher) normalize(s string) string {
	s = strings.ToLower(s)

	// Apostrophes and hyphens vary between spellings.
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '`', '’', 'ʿ', 'ʾ':
			return -1
		case '-', '_':
			return ' '
		}
		return r
	}, s)

	// Remove extra whitespace
	return strings.Join(strings.Fields(s), " ")
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (m *NameMatcher) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
