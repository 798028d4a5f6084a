package providers

import (
	"errors"
	"fmt"

	"github.com/TongAlan/val-api/internal/domain/regions"
)

var (
	// ErrNotFound reports that the upstream page was missing, unreachable or empty.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRegion reports a region outside the accepted set.
	ErrInvalidRegion = errors.New("invalid region")
)

// InvalidRegion wraps ErrInvalidRegion with the rejected value and the
// accepted set.
func InvalidRegion(raw string, allowed []regions.Region) error {
	return fmt.Errorf("%w %q: must be one of: %s", ErrInvalidRegion, raw, regions.Join(allowed))
}

// NotFound wraps ErrNotFound with what was looked up.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}
