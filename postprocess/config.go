package postprocess

import "github.com/nvr-ai/go-nms/images"

// Activation selects the normalization applied to raw logit scores.
type Activation string

const (
	// ActivationSigmoid maps each class logit independently to (0, 1).
	// This is the multi-label interpretation and the default.
	ActivationSigmoid Activation = "sigmoid"
	// ActivationSoftmax normalizes each anchor's class logits into a
	// probability distribution.
	ActivationSoftmax Activation = "softmax"
)

// Config defines parameters for multi-class Non-Maximum Suppression.
//
// A Config is copied by NewSuppressor and immutable afterwards; changing
// parameters means building a new Suppressor.
type Config struct {
	// Format is the coordinate convention of every box entering and
	// leaving the suppressor. Boxes are converted to canonical corner form
	// internally and converted back on output.
	Format images.BoxFormat
	// IoUThreshold is the overlap threshold for suppression, in [0, 1].
	// A candidate with IoU >= IoUThreshold against a kept box is
	// discarded. Exactly 1.0 disables suppression entirely (diagnostic
	// pass-through mode).
	IoUThreshold float32
	// ConfidenceThreshold is the minimum score for a candidate to be
	// eligible for output, in [0, 1]. 0 admits every candidate.
	ConfidenceThreshold float32
	// FromLogits indicates the incoming scores are raw logits and need
	// Activation applied before thresholding.
	FromLogits bool
	// Activation is the normalization used when FromLogits is set. Empty
	// selects sigmoid.
	Activation Activation
	// MaxDetections caps the detections returned per image after classes
	// are merged. Must be positive.
	MaxDetections int
	// MaxPerClass optionally caps winners per class during the greedy
	// pass. 0 disables the per-class cap.
	MaxPerClass int
	// ClassAware restricts suppression to boxes of the same class. When
	// false a kept box suppresses overlapping candidates of every class.
	ClassAware bool
	// NumWorkers bounds the goroutines used across the images of a batch.
	// 0 selects one worker per CPU.
	NumWorkers int
}

// DefaultConfig returns the documented defaults: corner boxes, per-class
// suppression, sigmoid normalization for logits.
func DefaultConfig() Config {
	return Config{
		Format:              images.FormatXYXY,
		IoUThreshold:        0.5,
		ConfidenceThreshold: 0.25,
		MaxDetections:       100,
		ClassAware:          true,
	}
}

// Validate checks every field and returns a ConfigurationError naming the
// first invalid one.
func (c Config) Validate() error {
	if !c.Format.Valid() {
		return &ConfigurationError{Field: "Format", Value: string(c.Format), Reason: "unknown box format"}
	}
	if c.IoUThreshold < 0 || c.IoUThreshold > 1 {
		return &ConfigurationError{Field: "IoUThreshold", Value: c.IoUThreshold, Reason: "must be in [0, 1]"}
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return &ConfigurationError{Field: "ConfidenceThreshold", Value: c.ConfidenceThreshold, Reason: "must be in [0, 1]"}
	}
	if c.FromLogits && c.Activation != "" && c.Activation != ActivationSigmoid && c.Activation != ActivationSoftmax {
		return &ConfigurationError{Field: "Activation", Value: string(c.Activation), Reason: "unknown activation"}
	}
	if c.MaxDetections <= 0 {
		return &ConfigurationError{Field: "MaxDetections", Value: c.MaxDetections, Reason: "must be positive"}
	}
	if c.MaxPerClass < 0 {
		return &ConfigurationError{Field: "MaxPerClass", Value: c.MaxPerClass, Reason: "must not be negative"}
	}
	if c.NumWorkers < 0 {
		return &ConfigurationError{Field: "NumWorkers", Value: c.NumWorkers, Reason: "must not be negative"}
	}
	return nil
}
