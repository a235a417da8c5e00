package postprocess

import "fmt"

// ConfigurationError reports an invalid Config field. It is returned at
// construction time, before any batch is processed.
type ConfigurationError struct {
	// Field is the name of the offending Config field.
	Field string
	// Value is the rejected value.
	Value any
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid config field %s = %v: %s", e.Field, e.Value, e.Reason)
}

// ShapeMismatchError reports malformed input: a prediction whose score
// vector disagrees with the batch's class count, or a tensor whose element
// count disagrees with its declared shape. The batch that produced it is
// rejected whole; no partial output is returned.
type ShapeMismatchError struct {
	// Anchor is the offending anchor index, or -1 when the mismatch is not
	// tied to a single anchor.
	Anchor int
	// Want is the expected count.
	Want int
	// Got is the count actually seen.
	Got int
	// What names the mismatched quantity.
	What string
}

func (e *ShapeMismatchError) Error() string {
	if e.Anchor >= 0 {
		return fmt.Sprintf("%s: anchor %d has %d, want %d", e.What, e.Anchor, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: got %d, want %d", e.What, e.Got, e.Want)
}
