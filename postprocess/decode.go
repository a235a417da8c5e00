package postprocess

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/images"
)

// Layout describes how a dense detection output tensor is arranged.
type Layout string

const (
	// LayoutAnchorsFirst is [batch, anchors, 4+classes]: each row holds
	// one anchor's box followed by its class scores (SSD and most DETR
	// exports).
	LayoutAnchorsFirst Layout = "anchors_first"
	// LayoutBoxesFirst is [batch, 4+classes, anchors]: each coordinate and
	// class plane is contiguous across anchors (YOLOv8-style exports).
	LayoutBoxesFirst Layout = "boxes_first"
)

// DecodeRaw converts a dense detection tensor into per-image predictions.
//
// shape must be rank 3: [batch, anchors, 4+classes] for LayoutAnchorsFirst
// or [batch, 4+classes, anchors] for LayoutBoxesFirst. Box coordinates pass
// through untouched; whatever format the model emits is declared to the
// suppressor via Config.Format.
//
// Arguments:
//   - data: The tensor's flat float32 elements.
//   - shape: The tensor's declared shape.
//   - layout: How boxes and scores are interleaved.
//
// Returns:
//   - One prediction slice per batch image.
//   - A ShapeMismatchError when the element count disagrees with the shape.
func DecodeRaw(data []float32, shape []int64, layout Layout) ([][]Prediction, error) {
	if len(shape) != 3 {
		return nil, errors.Errorf("detection output must be rank 3, got shape %v", shape)
	}

	batch := int(shape[0])
	var anchors, stride int
	switch layout {
	case LayoutAnchorsFirst:
		anchors, stride = int(shape[1]), int(shape[2])
	case LayoutBoxesFirst:
		stride, anchors = int(shape[1]), int(shape[2])
	default:
		return nil, errors.Errorf("unknown layout %q", layout)
	}
	if batch < 0 || anchors < 0 || stride < 5 {
		return nil, errors.Errorf("detection output needs 4 coordinates plus at least one class per anchor, got shape %v", shape)
	}

	want := batch * anchors * stride
	if len(data) != want {
		return nil, &ShapeMismatchError{Anchor: -1, Want: want, Got: len(data), What: "tensor element count"}
	}
	numClasses := stride - 4

	out := make([][]Prediction, batch)
	for b := 0; b < batch; b++ {
		img := data[b*anchors*stride : (b+1)*anchors*stride]
		preds := make([]Prediction, anchors)
		for i := 0; i < anchors; i++ {
			scores := make([]float32, numClasses)
			var box images.Box
			if layout == LayoutAnchorsFirst {
				row := img[i*stride : (i+1)*stride]
				box = images.Box{row[0], row[1], row[2], row[3]}
				copy(scores, row[4:])
			} else {
				for k := 0; k < 4; k++ {
					box[k] = img[k*anchors+i]
				}
				for c := 0; c < numClasses; c++ {
					scores[c] = img[(4+c)*anchors+i]
				}
			}
			preds[i] = Prediction{Box: box, Scores: scores}
		}
		out[b] = preds
	}
	return out, nil
}

// DecodeSplit converts paired detection outputs (one logits tensor, one
// boxes tensor, as DETR-family models export them) into a single image's
// predictions.
//
// Arguments:
//   - logits: numClasses values per anchor, anchor-major.
//   - boxes: 4 coordinates per anchor, anchor-major.
//   - numClasses: Class count of the logits tensor.
//
// Returns:
//   - The decoded predictions.
//   - A ShapeMismatchError when the two tensors disagree on anchor count.
func DecodeSplit(logits, boxes []float32, numClasses int) ([]Prediction, error) {
	if numClasses <= 0 {
		return nil, errors.Errorf("numClasses must be positive, got %d", numClasses)
	}
	if len(logits)%numClasses != 0 {
		return nil, errors.Errorf("logit count %d is not a multiple of %d classes", len(logits), numClasses)
	}

	anchors := len(logits) / numClasses
	if len(boxes) != anchors*4 {
		return nil, &ShapeMismatchError{Anchor: -1, Want: anchors * 4, Got: len(boxes), What: "box element count"}
	}

	preds := make([]Prediction, anchors)
	for q := 0; q < anchors; q++ {
		scores := make([]float32, numClasses)
		copy(scores, logits[q*numClasses:(q+1)*numClasses])
		b := boxes[q*4 : q*4+4]
		preds[q] = Prediction{
			Box:    images.Box{b[0], b[1], b[2], b[3]},
			Scores: scores,
		}
	}
	return preds, nil
}
