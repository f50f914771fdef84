package services

import (
	"context"
	"fmt"

	"iris-predictor-service/internal/core/domain"
	"iris-predictor-service/internal/core/ports/output"
)

type PredictionService struct {
	classifier ports.Classifier
}

func NewPredictionService(classifier ports.Classifier) *PredictionService {
	return &PredictionService{classifier: classifier}
}

// Predict classifies an already validated feature vector.
func (s *PredictionService) Predict(ctx context.Context, features domain.FeatureVector) (domain.ClassLabel, error) {
	index, err := s.classifier.Predict(ctx, features.Slice())
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}

	label, err := domain.LabelFor(index)
	if err != nil {
		return "", fmt.Errorf("map class index: %w", err)
	}
	return label, nil
}
