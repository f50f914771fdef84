package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock of ports.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, features []float64) (int, error) {
	args := m.Called(ctx, features)
	return args.Int(0), args.Error(1)
}
