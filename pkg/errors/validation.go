package errors

import (
	"strings"
	"unicode"
)

// ValidateTuningArg checks the raw tuning argument before it is scanned.
// Only an empty argument is missing; a supplied argument with no notes
// (blank or otherwise) is an empty tuning. Unknown characters are skipped
// by the parser, so nothing else is rejected here.
func ValidateTuningArg(s string) error {
	if s == "" {
		return New(ErrCodeMissingArgument, "tuning argument is required")
	}
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeEmptyTuning, "no notes found in %q", s)
	}
	return nil
}

// ValidateOutputPath validates a report output path.
// It rejects empty paths and control characters.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	return nil
}
