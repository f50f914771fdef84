package knn

import (
	"context"
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"iris-predictor-service/internal/core/domain"
	"iris-predictor-service/internal/core/ports/output"
)

// Classifier is a k-nearest-neighbors model held fully in memory. It is never
// mutated after Load and may be shared between goroutines.
type Classifier struct {
	k        int
	metric   string
	width    int
	samples  [][]float64
	targets  []int
	nClasses int
}

var _ ports.Classifier = (*Classifier)(nil)

// Load reads the model artifact at path and reports the loaded model on
// logger.
func Load(path string, logger *log.Entry) (*Classifier, error) {
	a, err := readArtifact(path)
	if err != nil {
		return nil, err
	}

	nClasses := 0
	for _, t := range a.Targets {
		if t+1 > nClasses {
			nClasses = t + 1
		}
	}

	c := &Classifier{
		k:        a.NNeighbors,
		metric:   a.Metric,
		width:    a.NFeatures,
		samples:  a.Samples,
		targets:  a.Targets,
		nClasses: nClasses,
	}

	logger.WithFields(log.Fields{
		"path":        path,
		"samples":     len(c.samples),
		"n_neighbors": c.k,
		"metric":      c.metric,
	}).Info("Starting: IrisPredictor")

	return c, nil
}

// Samples returns the number of training samples.
func (c *Classifier) Samples() int {
	return len(c.samples)
}

type neighbor struct {
	dist   float64
	target int
}

// Predict returns the majority class of the k nearest training samples.
// Ties go to the smallest class index.
func (c *Classifier) Predict(ctx context.Context, features []float64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(features) != c.width {
		return 0, fmt.Errorf("%w: got %d, want %d", domain.ErrFeatureWidth, len(features), c.width)
	}

	neighbors := make([]neighbor, len(c.samples))
	for i, s := range c.samples {
		neighbors[i] = neighbor{dist: c.distance(s, features), target: c.targets[i]}
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})

	votes := make([]int, c.nClasses)
	for _, n := range neighbors[:c.k] {
		votes[n.target]++
	}

	best := 0
	for class, v := range votes {
		if v > votes[best] {
			best = class
		}
	}
	return best, nil
}

func (c *Classifier) distance(a, b []float64) float64 {
	var sum float64
	switch c.metric {
	case metricManhattan:
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}
		return sum
	default:
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return math.Sqrt(sum)
	}
}
