package images

import "fmt"

// Box is a raw bounding box: four coordinates whose meaning is declared by an
// accompanying BoxFormat.
type Box [4]float32

// BoxFormat represents supported bounding box coordinate conventions.
type BoxFormat string

const (
	// FormatXYXY is corner form: x1, y1, x2, y2.
	FormatXYXY BoxFormat = "xyxy"
	// FormatXYWH is top-left corner plus size: x, y, width, height.
	FormatXYWH BoxFormat = "xywh"
	// FormatCenterXYWH is center plus size: cx, cy, width, height.
	FormatCenterXYWH BoxFormat = "center_xywh"
)

// Valid reports whether f is a recognized box format.
func (f BoxFormat) Valid() bool {
	switch f {
	case FormatXYXY, FormatXYWH, FormatCenterXYWH:
		return true
	}
	return false
}

// ParseBoxFormat parses a box format name.
//
// Arguments:
//   - s: The format name ("xyxy", "xywh" or "center_xywh").
//
// Returns:
//   - BoxFormat: The parsed format.
//   - error: An error naming the unrecognized value.
func ParseBoxFormat(s string) (BoxFormat, error) {
	f := BoxFormat(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown box format %q", s)
	}
	return f, nil
}

// ToCorners converts a raw box in format f to canonical corner form.
// Unrecognized formats are treated as corner form; callers are expected to
// validate the format up front.
func (f BoxFormat) ToCorners(b Box) Rect {
	switch f {
	case FormatXYWH:
		return Rect{X1: b[0], Y1: b[1], X2: b[0] + b[2], Y2: b[1] + b[3]}
	case FormatCenterXYWH:
		return Rect{
			X1: b[0] - b[2]/2,
			Y1: b[1] - b[3]/2,
			X2: b[0] + b[2]/2,
			Y2: b[1] + b[3]/2,
		}
	default:
		return Rect{X1: b[0], Y1: b[1], X2: b[2], Y2: b[3]}
	}
}

// FromCorners converts a canonical corner box back into format f. It is the
// inverse of ToCorners.
func (f BoxFormat) FromCorners(r Rect) Box {
	switch f {
	case FormatXYWH:
		return Box{r.X1, r.Y1, r.Width(), r.Height()}
	case FormatCenterXYWH:
		return Box{
			(r.X1 + r.X2) / 2,
			(r.Y1 + r.Y2) / 2,
			r.Width(),
			r.Height(),
		}
	default:
		return Box{r.X1, r.Y1, r.X2, r.Y2}
	}
}
