// Package images - Bounding box geometry for detection postprocessing.
package images

import "github.com/chewxy/math32"

// Rect is a lightweight bounding box in canonical corner form.
type Rect struct {
	// X1,Y1 is the top-left corner, X2,Y2 the bottom-right.
	X1, Y1, X2, Y2 float32
}

// Width returns the horizontal extent of the box (negative for an inverted
// box).
func (r Rect) Width() float32 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the box.
func (r Rect) Height() float32 {
	return r.Y2 - r.Y1
}

// Empty reports whether the box has no positive extent on either axis.
// Zero-area and inverted boxes are both empty.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Area returns the area of the box. Degenerate boxes have area 0.
func (r Rect) Area() float32 {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// CalculateIoU computes the Intersection over Union of two boxes.
//
// IoU (Intersection over Union) measures the extent of overlap between two
// bounding boxes as a value in [0, 1]:
//
//	IoU = Area of Intersection / Area of Union
//
//   - 1.0 means the boxes are identical.
//   - 0.0 means the boxes do not overlap at all.
//
// The intersection corners are the maximum of the top-left corners and the
// minimum of the bottom-right corners; if either extent is non-positive the
// boxes do not overlap. The union follows inclusion-exclusion:
//
//	Union(A, B) = Area(A) + Area(B) - Intersection(A, B)
//
// A degenerate box (zero or negative extent) has IoU 0 against everything,
// including itself: an empty union is reported as 0 rather than dividing by
// zero.
//
// Arguments:
//   - r: The first box, in canonical corner form.
//   - o: The other box to compare against.
//
// Returns:
//   - float32: The IoU score in [0, 1].
func CalculateIoU(r, o Rect) float32 {
	ix1 := math32.Max(r.X1, o.X1)
	iy1 := math32.Max(r.Y1, o.Y1)
	ix2 := math32.Min(r.X2, o.X2)
	iy2 := math32.Min(r.Y2, o.Y2)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0
	}
	interArea := interW * interH

	unionArea := r.Area() + o.Area() - interArea
	if unionArea <= 0 {
		return 0
	}

	return interArea / unionArea
}
