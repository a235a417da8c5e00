// Package gorgonia - Adapter from Gorgonia tensor detection outputs to
// suppressor predictions.
package gorgonia

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-nms/postprocess"
)

// Decode converts a dense float32 detection tensor produced by a Gorgonia
// graph into per-image predictions. Layout semantics match
// postprocess.DecodeRaw.
//
// Arguments:
//   - d: The graph's output tensor.
//   - layout: How the tensor interleaves boxes and scores.
//
// Returns:
//   - One prediction slice per batch image.
//   - An error if the tensor is not float32 or its shape does not describe
//     detections.
func Decode(d *tensor.Dense, layout postprocess.Layout) ([][]postprocess.Prediction, error) {
	if d.Dtype() != tensor.Float32 {
		return nil, errors.Errorf("detection tensor must be float32, got %v", d.Dtype())
	}
	data, ok := d.Data().([]float32)
	if !ok {
		return nil, errors.New("detection tensor backing is not []float32")
	}

	shape := d.Shape()
	dims := make([]int64, len(shape))
	for i, s := range shape {
		dims[i] = int64(s)
	}
	return postprocess.DecodeRaw(data, dims, layout)
}
