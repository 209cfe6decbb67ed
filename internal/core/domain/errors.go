package domain

import "errors"

// ============================================================================
// Configuration Errors
// ============================================================================

var (
	ErrInvalidTolerance = errors.New("tolerance must not be negative")
	ErrInvalidMarker    = errors.New("marker directory name must be a single non-empty path element")
	ErrInvalidExtension = errors.New("artifact extension is required")
)

// ============================================================================
// Traversal Errors
// ============================================================================

var (
	ErrRootUnreadable = errors.New("root directory cannot be read")
)
