package postprocess

import "github.com/chewxy/math32"

// sigmoid maps a logit to (0, 1).
func sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// softmax normalizes one anchor's class logits into a distribution, writing
// into dst. Subtracts the max logit first so large logits do not overflow.
func softmax(dst, logits []float32) {
	maxv := logits[0]
	for _, v := range logits[1:] {
		if v > maxv {
			maxv = v
		}
	}

	var sum float32
	for i, v := range logits {
		e := math32.Exp(v - maxv)
		dst[i] = e
		sum += e
	}
	for i := range dst {
		dst[i] /= sum
	}
}

// normalizeScores applies the configured activation to one anchor's scores.
// Scores pass through untouched when the config says they are already
// confidences.
func (s *Suppressor) normalizeScores(scores []float32) []float32 {
	if !s.cfg.FromLogits || len(scores) == 0 {
		return scores
	}

	out := make([]float32, len(scores))
	switch s.cfg.Activation {
	case ActivationSoftmax:
		softmax(out, scores)
	default:
		for i, v := range scores {
			out[i] = sigmoid(v)
		}
	}
	return out
}
