package cmd

import (
	"errors"
	"io/fs"

	"github.com/devstart/cli/internal/scaffold"
)

// Exit codes returned by the devstart process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid project name or Python version.
	ExitValidationError = 2

	// ExitDestinationError indicates the destination exists or is not empty.
	ExitDestinationError = 3

	// ExitFilesystemError indicates an I/O failure while writing the tree.
	ExitFilesystemError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitDestinationError:
		return "Destination Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, scaffold.ErrNameInvalid),
		errors.Is(err, scaffold.ErrNameReserved),
		errors.Is(err, scaffold.ErrVersionInvalid):
		return ExitValidationError
	case errors.Is(err, scaffold.ErrDestinationExists),
		errors.Is(err, scaffold.ErrDestinationNotEmpty):
		return ExitDestinationError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitFilesystemError
	}

	return ExitGeneralError
}
