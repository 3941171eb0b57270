package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRole marks a batch precondition failure: one of the four
	// required role categories matched zero files.
	ErrMissingRole = errors.New("missing role files")
	// ErrDecode marks an input image that could not be decoded.
	ErrDecode = errors.New("decode failure")
	// ErrEncode marks a failed or unsupported output write attempt.
	ErrEncode = errors.New("encode failure")
	// ErrDimension marks a role image whose dimensions disagree with the
	// primary under the strict dimension policy.
	ErrDimension = errors.New("dimension mismatch")
	// ErrFilesystem marks directory-creation and rename failures.
	ErrFilesystem = errors.New("filesystem error")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error must abort the whole batch rather than be
// recorded against a single role set or write attempt. Missing role lists and
// bad configuration are fatal before any set is processed; decode, dimension,
// encode, and filesystem errors stay local to the set or file they name.
func Fatal(err error) bool {
	return errors.Is(err, ErrMissingRole) || errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
