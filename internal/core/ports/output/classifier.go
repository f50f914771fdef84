package ports

import "context"

// Classifier maps a feature vector to a class index. Implementations must be
// safe for concurrent use.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (int, error)
}
