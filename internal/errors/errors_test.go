package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeRequestPrompt, "test error message")

	if err.Code != ErrCodeRequestPrompt {
		t.Errorf("expected code %s, got %s", ErrCodeRequestPrompt, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeCatalogFile, "failed to read catalog", cause)

	if err.Code != ErrCodeCatalogFile {
		t.Errorf("expected code %s, got %s", ErrCodeCatalogFile, err.Code)
	}

	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *RouterError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeCatalogEmpty, "catalog is empty"),
			wantCode: "CATALOG-001",
			wantMsg:  "catalog is empty",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeConfigFile, "read failed", fmt.Errorf("permission denied")),
			wantCode: "CONFIG-002",
			wantMsg:  "permission denied",
		},
		{
			name:     "error with suggestions and docs",
			err:      NewInvalidModalityError("video"),
			wantCode: "REQ-002",
			wantMsg:  "Suggestions:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{"prompt", NewPromptRequiredError(), ErrInvalidPrompt, true},
		{"wrapped with fmt", fmt.Errorf("route: %w", NewPromptRequiredError()), ErrInvalidPrompt, true},
		{"same code other message", New(ErrCodeRequestPrompt, "prompt missing from form"), ErrInvalidPrompt, true},
		{"different code", NewInvalidModalityError("x"), ErrInvalidPrompt, false},
		{"plain error", fmt.Errorf("boom"), ErrInvalidPrompt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.sentinel); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"prompt", NewPromptRequiredError(), true},
		{"malformed", NewMalformedRequestError(nil), true},
		{"wrapped", fmt.Errorf("outer: %w", NewInvalidModalityError("x")), true},
		{"catalog", NewCatalogDuplicateError("gpt-4o"), false},
		{"internal", NewInternalError(fmt.Errorf("panic")), false},
		{"plain", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidRequest(tt.err); got != tt.want {
				t.Errorf("IsInvalidRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(NewCatalogInvalidError("m", "bad")); got != ErrCodeCatalogInvalid {
		t.Errorf("CodeOf() = %s, want %s", got, ErrCodeCatalogInvalid)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad").
		WithSuggestion("first").
		WithSuggestions("second", "third").
		WithDocs("https://example.com/docs")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}
	if err.DocsURL != "https://example.com/docs" {
		t.Errorf("DocsURL = %q", err.DocsURL)
	}
	if !strings.Contains(err.Error(), "Documentation: https://example.com/docs") {
		t.Errorf("Error() should include docs link, got %s", err.Error())
	}
}
