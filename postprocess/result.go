// Package postprocess - Multi-class Non-Maximum Suppression for detection
// model outputs.
package postprocess

import "github.com/nvr-ai/go-nms/images"

// Prediction is one anchor's raw model output.
type Prediction struct {
	// Box is the predicted box, in the Config's declared format.
	Box images.Box
	// Scores holds one confidence (or logit, see Config.FromLogits) per
	// class. Every prediction of an image must agree on the class count.
	Scores []float32
}

// Detection is a single kept detection after suppression.
type Detection struct {
	// Box is the winning box, converted back to the Config's declared
	// format.
	Box images.Box
	// Class is the predicted class index.
	Class int
	// Score is the normalized confidence of the detection.
	Score float32
}
