package knn

import (
	"encoding/json"
	"fmt"
	"os"

	"iris-predictor-service/internal/core/domain"
)

const (
	algorithmKNN    = "knn"
	metricEuclidean = "euclidean"
	metricManhattan = "manhattan"
)

// artifact is the on-disk representation written by the training pipeline.
type artifact struct {
	Algorithm  string      `json:"algorithm"`
	NNeighbors int         `json:"n_neighbors"`
	Metric     string      `json:"metric"`
	NFeatures  int         `json:"n_features"`
	Samples    [][]float64 `json:"samples"`
	Targets    []int       `json:"targets"`
}

func readArtifact(path string) (*artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *artifact) validate() error {
	if a.Algorithm != algorithmKNN {
		return fmt.Errorf("%w: algorithm %q", domain.ErrUnsupportedModel, a.Algorithm)
	}
	switch a.Metric {
	case "":
		a.Metric = metricEuclidean
	case metricEuclidean, metricManhattan:
	default:
		return fmt.Errorf("%w: metric %q", domain.ErrUnsupportedModel, a.Metric)
	}

	if a.NNeighbors < 1 {
		return fmt.Errorf("%w: n_neighbors must be >= 1", domain.ErrCorruptModel)
	}
	if len(a.Samples) == 0 {
		return fmt.Errorf("%w: no training samples", domain.ErrCorruptModel)
	}
	if len(a.Samples) != len(a.Targets) {
		return fmt.Errorf("%w: %d samples but %d targets", domain.ErrCorruptModel, len(a.Samples), len(a.Targets))
	}
	if a.NNeighbors > len(a.Samples) {
		return fmt.Errorf("%w: n_neighbors %d exceeds %d samples", domain.ErrCorruptModel, a.NNeighbors, len(a.Samples))
	}
	if a.NFeatures < 1 {
		return fmt.Errorf("%w: n_features must be >= 1", domain.ErrCorruptModel)
	}
	for i, s := range a.Samples {
		if len(s) != a.NFeatures {
			return fmt.Errorf("%w: sample %d has %d features, want %d", domain.ErrCorruptModel, i, len(s), a.NFeatures)
		}
		if a.Targets[i] < 0 {
			return fmt.Errorf("%w: sample %d has negative target", domain.ErrCorruptModel, i)
		}
	}
	return nil
}
