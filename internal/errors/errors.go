package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Request errors (REQ-001 to REQ-099) are client mistakes and map to HTTP 400
	ErrCodeRequestPrompt    ErrorCode = "REQ-001"
	ErrCodeRequestModality  ErrorCode = "REQ-002"
	ErrCodeRequestPriority  ErrorCode = "REQ-003"
	ErrCodeRequestMalformed ErrorCode = "REQ-004"

	// Catalog errors (CATALOG-001 to CATALOG-099)
	ErrCodeCatalogEmpty     ErrorCode = "CATALOG-001"
	ErrCodeCatalogDuplicate ErrorCode = "CATALOG-002"
	ErrCodeCatalogInvalid   ErrorCode = "CATALOG-003"
	ErrCodeCatalogFile      ErrorCode = "CATALOG-004"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigFile    ErrorCode = "CONFIG-002"

	// Internal errors (INTERNAL-001 to INTERNAL-099)
	ErrCodeInternal ErrorCode = "INTERNAL-001"
)

const docsBase = "https://github.com/paikeys/paikeys#"

// RouterError represents an enhanced error with code, suggestions, and documentation
type RouterError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *RouterError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *RouterError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a RouterError with the same code, so sentinel
// values like ErrInvalidPrompt match any error carrying that code.
func (e *RouterError) Is(target error) bool {
	t, ok := target.(*RouterError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// New creates a new RouterError
func New(code ErrorCode, message string) *RouterError {
	return &RouterError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new RouterError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *RouterError {
	return &RouterError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *RouterError) WithSuggestion(suggestion string) *RouterError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *RouterError) WithSuggestions(suggestions ...string) *RouterError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *RouterError) WithDocs(url string) *RouterError {
	e.DocsURL = url
	return e
}

// ErrInvalidPrompt matches any missing-prompt error with errors.Is.
var ErrInvalidPrompt = &RouterError{Code: ErrCodeRequestPrompt}

// CodeOf returns the code of the first RouterError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var re *RouterError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}

// IsInvalidRequest reports whether err is a client-side request error.
func IsInvalidRequest(err error) bool {
	return strings.HasPrefix(string(CodeOf(err)), "REQ-")
}

// Common error constructors for frequently used errors

// NewPromptRequiredError creates an empty prompt error
func NewPromptRequiredError() *RouterError {
	return New(ErrCodeRequestPrompt, "prompt is required").
		WithSuggestion("Describe the task you want to route in plain language").
		WithDocs(docsBase + "routing-requests")
}

// NewInvalidModalityError creates an unknown modality error
func NewInvalidModalityError(value string) *RouterError {
	return New(ErrCodeRequestModality, fmt.Sprintf("invalid modality: %q", value)).
		WithSuggestion("Use one of: text, code, vision, audio, image, multimodal").
		WithDocs(docsBase + "routing-requests")
}

// NewInvalidPriorityError creates an unknown priority error
func NewInvalidPriorityError(value string) *RouterError {
	return New(ErrCodeRequestPriority, fmt.Sprintf("invalid priority: %q", value)).
		WithSuggestion("Use one of: intelligence, speed, economy").
		WithDocs(docsBase + "routing-requests")
}

// NewMalformedRequestError creates an unparseable request body error
func NewMalformedRequestError(cause error) *RouterError {
	return Wrap(ErrCodeRequestMalformed, "malformed request body", cause).
		WithSuggestion("Send a JSON object with prompt, modality, and priority fields")
}

// NewCatalogInvalidError creates a model definition validation error
func NewCatalogInvalidError(modelID string, details string) *RouterError {
	return New(ErrCodeCatalogInvalid, fmt.Sprintf("invalid model definition %q: %s", modelID, details)).
		WithSuggestion("Fix the entry and rerun 'paikeys catalog validate <file>'; validation stops at the first invalid model").
		WithDocs(docsBase + "catalog-format")
}

// NewCatalogDuplicateError creates a duplicate model id error
func NewCatalogDuplicateError(modelID string) *RouterError {
	return New(ErrCodeCatalogDuplicate, fmt.Sprintf("duplicate model id: %s", modelID)).
		WithSuggestion("Model ids must be unique across the catalog")
}

// NewCatalogFileError creates a catalog file read/parse error
func NewCatalogFileError(path string, cause error) *RouterError {
	return Wrap(ErrCodeCatalogFile, fmt.Sprintf("failed to load catalog file: %s", path), cause).
		WithSuggestion("Check the file path and YAML syntax").
		WithSuggestion("Run 'paikeys catalog export' to get a starting template").
		WithDocs(docsBase + "catalog-format")
}

// NewConfigInvalidError creates a router configuration validation error
func NewConfigInvalidError(details string) *RouterError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid router configuration: %s", details)).
		WithDocs(docsBase + "configuration")
}

// NewInternalError creates a generic internal failure that is safe to log
// but never shown to clients verbatim.
func NewInternalError(cause error) *RouterError {
	return Wrap(ErrCodeInternal, "internal routing failure", cause)
}
