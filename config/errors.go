package config

import "errors"

// Sentinel errors for config operations.
var (
	// ErrInvalidOverlapMode indicates an unrecognized overlap_mode string.
	ErrInvalidOverlapMode = errors.New("config: invalid overlap_mode")
	// ErrInvalidKRequired indicates k_required < 1.
	ErrInvalidKRequired = errors.New("config: k_required must be >= 1")
	// ErrInvalidSpacing indicates a non-positive spacing value.
	ErrInvalidSpacing = errors.New("config: spacing must be > 0")
)
