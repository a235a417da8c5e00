// Package onnx - Adapters from ONNX Runtime detection outputs to
// suppressor predictions.
package onnx

import (
	ort "github.com/yalue/onnxruntime_go"

	"github.com/nvr-ai/go-nms/postprocess"
)

// Decode reads a dense detection output tensor straight from an ONNX
// Runtime session and converts it into per-image predictions.
//
// Arguments:
//   - t: The session's float32 output tensor.
//   - layout: How the tensor interleaves boxes and scores, see
//     postprocess.Layout.
//
// Returns:
//   - One prediction slice per batch image.
//   - An error if the tensor shape does not describe detections.
func Decode(t *ort.Tensor[float32], layout postprocess.Layout) ([][]postprocess.Prediction, error) {
	return postprocess.DecodeRaw(t.GetData(), t.GetShape(), layout)
}

// DecodeSplit reads DETR-style paired output tensors (class logits and box
// coordinates) for a single image.
//
// Arguments:
//   - logits: The [anchors, numClasses] logits tensor.
//   - boxes: The [anchors, 4] box tensor.
//   - numClasses: Class count of the logits tensor.
//
// Returns:
//   - The decoded predictions, or an error if the tensors disagree on
//     anchor count.
func DecodeSplit(logits, boxes *ort.Tensor[float32], numClasses int) ([]postprocess.Prediction, error) {
	return postprocess.DecodeSplit(logits.GetData(), boxes.GetData(), numClasses)
}
