package domain

import "errors"

// ============================================================================
// Request Validation Errors
// ============================================================================

// The messages are part of the HTTP contract and are returned verbatim.
var (
	ErrInvalidJSON        = errors.New("Invalid JSON")
	ErrNoFeatures         = errors.New("Invalid input: no features")
	ErrFeaturesNotList    = errors.New("Invalid input: features are not in list")
	ErrFeaturesLength     = errors.New("Invalid input: features are not of length 4")
	ErrFeaturesNotNumbers = errors.New("Invalid input: features are not real numbers")
)

// ============================================================================
// Model Errors
// ============================================================================

var (
	ErrUnsupportedModel = errors.New("unsupported model artifact")
	ErrCorruptModel     = errors.New("corrupt model artifact")
	ErrFeatureWidth     = errors.New("feature vector width does not match model")
	ErrUnknownClass     = errors.New("class index has no label")
)
