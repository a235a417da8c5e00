package postprocess

import (
	"sort"
	"sync"

	"github.com/nvr-ai/go-nms/images"
)

// candidate is one (box, class) pair that survived the confidence filter.
type candidate struct {
	rect   images.Rect
	score  float32
	class  int
	anchor int
}

// Suppressor applies multi-class Non-Maximum Suppression with a fixed
// Config. It holds no per-call state and is safe for concurrent use.
type Suppressor struct {
	cfg Config
}

// NewSuppressor validates the config and returns an immutable Suppressor.
// An invalid config fails here, before any batch is processed, with a
// ConfigurationError naming the offending field.
func NewSuppressor(cfg Config) (*Suppressor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Suppressor{cfg: cfg}, nil
}

// Config returns a copy of the suppressor's configuration.
func (s *Suppressor) Config() Config {
	return s.cfg
}

// SuppressImage prunes one image's dense predictions down to at most
// MaxDetections non-overlapping, high-confidence detections.
//
// Scores are normalized if configured, candidates below the confidence
// threshold are dropped, each class is suppressed greedily and
// independently (unless ClassAware is off), and the per-class winners are
// merged, re-sorted by confidence and truncated to MaxDetections. Output
// boxes are converted back to the configured format.
//
// Arguments:
//   - preds: One image's predictions, boxes in the configured format.
//
// Returns:
//   - The kept detections, ordered by descending confidence.
//   - A ShapeMismatchError if the predictions disagree on class count.
func (s *Suppressor) SuppressImage(preds []Prediction) ([]Detection, error) {
	numClasses, err := classCount(preds)
	if err != nil {
		return nil, err
	}
	if numClasses == 0 {
		return []Detection{}, nil
	}

	var winners []candidate
	if s.cfg.ClassAware {
		byClass := s.collectPerClass(preds, numClasses)
		winners = s.suppressClasses(byClass)
	} else {
		winners = s.greedy(s.collectAll(preds))
	}

	// Final merge: confidence descending, deterministic tie-breaks, then
	// the global cap.
	sort.Slice(winners, func(i, j int) bool {
		return lessCandidate(winners[i], winners[j])
	})
	if len(winners) > s.cfg.MaxDetections {
		winners = winners[:s.cfg.MaxDetections]
	}

	detections := make([]Detection, len(winners))
	for i, w := range winners {
		detections[i] = Detection{
			Box:   s.cfg.Format.FromCorners(w.rect),
			Class: w.class,
			Score: w.score,
		}
	}
	return detections, nil
}

// classCount determines the image's class count and rejects predictions
// whose score vectors disagree with it. Empty input has zero classes.
func classCount(preds []Prediction) (int, error) {
	if len(preds) == 0 {
		return 0, nil
	}
	want := len(preds[0].Scores)
	for i, p := range preds {
		if len(p.Scores) != want {
			return 0, &ShapeMismatchError{
				Anchor: i,
				Want:   want,
				Got:    len(p.Scores),
				What:   "class score count",
			}
		}
	}
	return want, nil
}

// collectPerClass normalizes scores, applies the confidence filter and
// partitions the surviving (box, class) pairs by class, preserving anchor
// order within each class.
func (s *Suppressor) collectPerClass(preds []Prediction, numClasses int) [][]candidate {
	byClass := make([][]candidate, numClasses)
	for i, p := range preds {
		rect := s.cfg.Format.ToCorners(p.Box)
		scores := s.normalizeScores(p.Scores)
		for c, score := range scores {
			if score < s.cfg.ConfidenceThreshold {
				continue
			}
			byClass[c] = append(byClass[c], candidate{
				rect:   rect,
				score:  score,
				class:  c,
				anchor: i,
			})
		}
	}
	return byClass
}

// collectAll is collectPerClass without the partitioning, for class-agnostic
// suppression.
func (s *Suppressor) collectAll(preds []Prediction) []candidate {
	all := make([]candidate, 0, len(preds))
	for i, p := range preds {
		rect := s.cfg.Format.ToCorners(p.Box)
		scores := s.normalizeScores(p.Scores)
		for c, score := range scores {
			if score < s.cfg.ConfidenceThreshold {
				continue
			}
			all = append(all, candidate{
				rect:   rect,
				score:  score,
				class:  c,
				anchor: i,
			})
		}
	}
	return all
}

// suppressClasses runs the greedy pass for every class concurrently. Each
// goroutine owns one indexed result slot, so the merge is deterministic
// regardless of scheduling.
func (s *Suppressor) suppressClasses(byClass [][]candidate) []candidate {
	winners := make([][]candidate, len(byClass))

	var wg sync.WaitGroup
	for c := range byClass {
		if len(byClass[c]) == 0 {
			continue
		}
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			winners[c] = s.greedy(byClass[c])
		}(c)
	}
	wg.Wait()

	var merged []candidate
	for _, w := range winners {
		merged = append(merged, w...)
	}
	return merged
}

// greedy performs standard greedy Non-Maximum Suppression over one
// candidate pool: repeatedly keep the highest-confidence candidate and
// discard everything it overlaps at or above the IoU threshold.
//
// The pool is sorted by confidence descending with ties broken by anchor
// index (then class), so identical inputs always produce identical output.
// An IoUThreshold of exactly 1.0 keeps everything: identical boxes have IoU
// exactly 1.0 and the pass-through mode must not suppress them.
func (s *Suppressor) greedy(pool []candidate) []candidate {
	n := len(pool)
	if n == 0 {
		return nil
	}

	sort.Slice(pool, func(i, j int) bool {
		return lessCandidate(pool[i], pool[j])
	})

	limit := s.cfg.MaxPerClass
	if !s.cfg.ClassAware {
		// Per-class caps have no meaning across classes; only the
		// global MaxDetections applies.
		limit = 0
	}
	suppress := s.cfg.IoUThreshold < 1.0

	kept := make([]candidate, 0, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}

		anchor := pool[i]
		kept = append(kept, anchor)
		used[i] = true
		if limit > 0 && len(kept) >= limit {
			break
		}
		if !suppress {
			continue
		}

		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			// A zero IoU means no overlap at all (including every
			// degenerate box), which is never a duplicate, even
			// with a zero threshold.
			iou := images.CalculateIoU(anchor.rect, pool[j].rect)
			if iou > 0 && iou >= s.cfg.IoUThreshold {
				used[j] = true
			}
		}
	}

	return kept
}

// lessCandidate is the deterministic candidate order: confidence
// descending, then anchor index ascending, then class ascending.
func lessCandidate(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.anchor != b.anchor {
		return a.anchor < b.anchor
	}
	return a.class < b.class
}
