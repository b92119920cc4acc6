package ndarray

import "github.com/pkg/errors"

// Error kinds surfaced by fallible operations. Call sites distinguish
// them with errors.Is; operations wrap them with context.
var (
	// ErrShapeMismatch reports incompatible operand shapes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrOutOfRange reports a position outside the target range.
	ErrOutOfRange = errors.New("position out of range")
)
