package router

import "unicode/utf8"

// DefaultCharsPerToken is the heuristic ratio used when none is configured.
const DefaultCharsPerToken = 4

// TokenCounter provides token counting utilities
type TokenCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4 for English text.
	CharsPerToken int
}

// NewTokenCounter creates a new token counter with default settings
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{CharsPerToken: DefaultCharsPerToken}
}

// EstimateTokens estimates the number of tokens in a text string.
// It rounds up, so any non-empty text is at least one token, and never
// decreases when text is appended.
func (tc *TokenCounter) EstimateTokens(text string) int {
	chars := utf8.RuneCountInString(text)
	if chars == 0 {
		return 0
	}

	perToken := tc.CharsPerToken
	if perToken <= 0 {
		perToken = DefaultCharsPerToken
	}

	return (chars + perToken - 1) / perToken
}
