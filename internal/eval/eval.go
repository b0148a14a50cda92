// Package eval scores detection results against ground truth.
//
// A ground-truth file is a YAML document mapping image file names to the
// multiset of shape types expected in that image. The evaluator runs the
// detection pipeline over the named images and reports per-image and
// overall multiset-overlap accuracy. Scoring compares shape types only;
// positions and confidences are not judged.
package eval

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
	"github.com/VinithaChowdary/Shape-Detector/internal/imaging"
)

// defaultWorkers bounds concurrent image evaluations when the caller does
// not specify a worker count.
const defaultWorkers = 4

// GroundTruth maps image file names to expected shape-type names.
type GroundTruth struct {
	Images map[string][]string `yaml:"images"`
}

// LoadGroundTruth reads and validates a YAML ground-truth file. Every
// expected shape name must be a known shape type.
func LoadGroundTruth(path string) (*GroundTruth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth: %w", err)
	}

	var gt GroundTruth
	if err := yaml.Unmarshal(data, &gt); err != nil {
		return nil, fmt.Errorf("failed to parse ground truth: %w", err)
	}

	for name, expected := range gt.Images {
		for _, shape := range expected {
			if _, err := detect.ParseShapeType(shape); err != nil {
				return nil, fmt.Errorf("ground truth entry %q: %w", name, err)
			}
		}
	}
	return &gt, nil
}

// ImageScore is the evaluation outcome for one image.
type ImageScore struct {
	// Name is the image file name from the ground-truth file.
	Name string `json:"name"`

	// Expected lists the ground-truth shape types.
	Expected []string `json:"expected"`

	// Detected lists the shape types the pipeline reported.
	Detected []string `json:"detected"`

	// Matched is the multiset overlap between Expected and Detected.
	Matched int `json:"matched"`

	// Score is Matched divided by the larger of the two multiset sizes,
	// or 1 when both are empty.
	Score float64 `json:"score"`
}

// Report aggregates the evaluation over all ground-truth images.
type Report struct {
	// Images holds per-image scores sorted by name.
	Images []ImageScore `json:"images"`

	// Matched is the total multiset overlap across all images.
	Matched int `json:"matched"`

	// Total is the sum of per-image max(len(expected), len(detected)).
	Total int `json:"total"`

	// Accuracy is Matched / Total, or 1 when Total is 0.
	Accuracy float64 `json:"accuracy"`
}

// Evaluator runs the detection pipeline over ground-truth images.
type Evaluator struct {
	detector *detect.Detector
	cache    *imaging.ImageCache
}

// New creates an Evaluator around the given detector.
func New(detector *detect.Detector) *Evaluator {
	return &Evaluator{
		detector: detector,
		cache:    imaging.NewImageCache(),
	}
}

// Run evaluates every image named in the ground truth. Image files are
// resolved relative to dir and processed concurrently by at most workers
// goroutines (a default bound applies when workers <= 0). Each individual
// pipeline call stays fully synchronous.
//
// A missing or undecodable image aborts the run with an error; detection
// itself cannot fail.
func (e *Evaluator) Run(ctx context.Context, dir string, gt *GroundTruth, workers int) (*Report, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}

	names := make([]string, 0, len(gt.Images))
	for name := range gt.Images {
		names = append(names, name)
	}
	sort.Strings(names)

	scores := make([]ImageScore, len(names))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img, err := e.cache.Load(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("image %q: %w", name, err)
			}

			result := e.detector.DetectImage(img)
			detected := make([]string, 0, result.Count)
			for _, s := range result.Shapes {
				detected = append(detected, s.Type.String())
			}

			score := scoreMultisets(gt.Images[name], detected)
			score.Name = name

			mu.Lock()
			scores[i] = score
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Images: scores}
	for _, s := range scores {
		report.Matched += s.Matched
		report.Total += max(len(s.Expected), len(s.Detected))
	}
	if report.Total > 0 {
		report.Accuracy = float64(report.Matched) / float64(report.Total)
	} else {
		report.Accuracy = 1
	}
	return report, nil
}

// scoreMultisets computes the multiset overlap between expected and
// detected shape-type names.
func scoreMultisets(expected, detected []string) ImageScore {
	counts := make(map[string]int)
	for _, s := range expected {
		counts[s]++
	}

	matched := 0
	for _, s := range detected {
		if counts[s] > 0 {
			counts[s]--
			matched++
		}
	}

	score := 1.0
	if denom := max(len(expected), len(detected)); denom > 0 {
		score = float64(matched) / float64(denom)
	}

	return ImageScore{
		Expected: expected,
		Detected: detected,
		Matched:  matched,
		Score:    score,
	}
}
