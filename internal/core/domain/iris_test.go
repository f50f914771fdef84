package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	for i, expected := range []ClassLabel{"setosa", "versicolor", "virginica"} {
		label, err := LabelFor(i)
		assert.NoError(t, err)
		assert.Equal(t, expected, label)
	}
}

func TestLabelFor_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3, 42} {
		_, err := LabelFor(index)
		assert.ErrorIs(t, err, ErrUnknownClass)
	}
}
