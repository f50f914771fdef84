package domain

import "fmt"

// FeatureCount is the number of measurements the model was trained on.
const FeatureCount = 4

// FeatureVector holds sepal length, sepal width, petal length and petal
// width, in that order.
type FeatureVector [FeatureCount]float64

// Slice returns the vector as a slice for classifiers.
func (f FeatureVector) Slice() []float64 {
	return f[:]
}

type ClassLabel string

const (
	ClassSetosa     ClassLabel = "setosa"
	ClassVersicolor ClassLabel = "versicolor"
	ClassVirginica  ClassLabel = "virginica"
)

// ClassLabels maps class indices to labels. The order must match the order
// the model was trained with.
var ClassLabels = [...]ClassLabel{ClassSetosa, ClassVersicolor, ClassVirginica}

// LabelFor maps a class index produced by a classifier to its label.
func LabelFor(index int) (ClassLabel, error) {
	if index < 0 || index >= len(ClassLabels) {
		return "", fmt.Errorf("%w: %d", ErrUnknownClass, index)
	}
	return ClassLabels[index], nil
}
