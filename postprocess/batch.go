package postprocess

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Suppress processes a batch of images. Images never interact, so they are
// suppressed concurrently, bounded by NumWorkers; the result keeps the
// input's image order and is identical whatever the worker count.
//
// Arguments:
//   - batch: One prediction slice per image.
//
// Returns:
//   - One detection slice per image, in batch order.
//   - The first image's error, wrapped with its batch index; no partial
//     output is returned alongside an error.
func (s *Suppressor) Suppress(batch [][]Prediction) ([][]Detection, error) {
	out := make([][]Detection, len(batch))

	workers := s.cfg.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, preds := range batch {
		g.Go(func() error {
			detections, err := s.SuppressImage(preds)
			if err != nil {
				return errors.Wrapf(err, "image %d", i)
			}
			out[i] = detections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
