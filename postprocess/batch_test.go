package postprocess

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-nms/images"
)

func randomBatch(seed int64, numImages, anchors, numClasses int) [][]Prediction {
	rng := rand.New(rand.NewSource(seed))
	batch := make([][]Prediction, numImages)
	for b := range batch {
		preds := make([]Prediction, anchors)
		for i := range preds {
			x := rng.Float32() * 200
			y := rng.Float32() * 200
			scores := make([]float32, numClasses)
			for c := range scores {
				scores[c] = rng.Float32()
			}
			preds[i] = Prediction{
				Box:    images.Box{x, y, x + 25, y + 25},
				Scores: scores,
			}
		}
		batch[b] = preds
	}
	return batch
}

func TestSuppressBatchOrder(t *testing.T) {
	s := newSuppressor(t, func(c *Config) {
		c.ConfidenceThreshold = 0.1
	})

	batch := [][]Prediction{
		{pred(images.Box{0, 0, 10, 10}, 0.9)},
		{}, // empty image stays an empty result, not an error
		{
			pred(images.Box{0, 0, 10, 10}, 0.6),
			pred(images.Box{50, 50, 60, 60}, 0.7),
		},
	}

	out, err := s.Suppress(batch)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Len(t, out[0], 1)
	assert.Empty(t, out[1])
	assert.Len(t, out[2], 2)
	assert.InDelta(t, 0.7, out[2][0].Score, 1e-6)
}

// TestSuppressBatchDeterministicAcrossWorkerCounts: the worker count is a
// throughput knob, never a semantic one.
func TestSuppressBatchDeterministicAcrossWorkerCounts(t *testing.T) {
	batch := randomBatch(31, 6, 150, 5)

	var want [][]Detection
	for _, workers := range []int{0, 1, 2, 8} {
		s := newSuppressor(t, func(c *Config) {
			c.ConfidenceThreshold = 0.05
			c.MaxDetections = 500
			c.NumWorkers = workers
		})

		out, err := s.Suppress(batch)
		require.NoError(t, err)

		if want == nil {
			want = out
			continue
		}
		require.Equal(t, want, out, "workers=%d diverged", workers)
	}
}

func TestSuppressBatchErrorNamesImage(t *testing.T) {
	s := newSuppressor(t, nil)

	batch := [][]Prediction{
		{pred(images.Box{0, 0, 10, 10}, 0.9, 0.1)},
		{
			pred(images.Box{0, 0, 10, 10}, 0.9, 0.1),
			pred(images.Box{5, 5, 15, 15}, 0.8), // wrong class count
		},
	}

	out, err := s.Suppress(batch)
	require.Error(t, err)
	assert.Nil(t, out, "no partial output on error")
	assert.Contains(t, err.Error(), "image 1")

	var serr *ShapeMismatchError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 1, serr.Anchor)
}

func TestSuppressEmptyBatch(t *testing.T) {
	s := newSuppressor(t, nil)

	out, err := s.Suppress(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
