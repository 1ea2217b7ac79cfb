// Package exitcode maps errors to process exit statuses.
package exitcode

import (
	"os"
	"strings"

	"github.com/paikeys/paikeys/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage or an invalid routing request
	UsageError = 2

	// CatalogError indicates a catalog that is missing, unreadable or violates an invariant
	CatalogError = 3

	// ConfigError indicates an unreadable or invalid router configuration
	ConfigError = 4

	// Interrupted indicates the user cancelled the operation (128 + SIGINT)
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode derives the exit code from a structured error code, or
// from cobra's usage messages for errors raised before any command ran.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	code := string(errors.CodeOf(err))
	switch {
	case strings.HasPrefix(code, "REQ-"):
		return UsageError
	case strings.HasPrefix(code, "CATALOG-"):
		return CatalogError
	case strings.HasPrefix(code, "CONFIG-"):
		return ConfigError
	case code != "":
		return GeneralError
	}

	msg := strings.ToLower(err.Error())
	for _, usage := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "required flag", "accepts ", "invalid argument"} {
		if strings.Contains(msg, usage) {
			return UsageError
		}
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags, arguments or request)"
	case CatalogError:
		return "Catalog error"
	case ConfigError:
		return "Configuration error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
