package main

import (
	"errors"
	"os"

	"github.com/okc-dev/okc/internal/flavor"
	"github.com/okc-dev/okc/internal/mcversion"
)

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitBadVersion indicates the version identifier is not in the table
	ExitBadVersion = 3

	// ExitUnknownFlavor indicates the flavor name is not recognized
	ExitUnknownFlavor = 4

	// ExitUnsupported indicates the flavor cannot run the version
	ExitUnsupported = 5

	// ExitNoDownload indicates the flavor has no download rule for the version
	ExitNoDownload = 6
)

// usageError marks argument and flag errors.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// errNoDownload is returned by url for compatible pairs without a download rule.
var errNoDownload = errors.New("no download rule")

func exitCodeFor(err error) int {
	var usage usageError
	var unsupported *flavor.UnsupportedError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, mcversion.ErrBadVersion):
		return ExitBadVersion
	case errors.Is(err, flavor.ErrUnknownFlavor):
		return ExitUnknownFlavor
	case errors.As(err, &unsupported):
		return ExitUnsupported
	case errors.Is(err, errNoDownload):
		return ExitNoDownload
	default:
		return ExitGeneral
	}
}

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}
