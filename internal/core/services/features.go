package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"iris-predictor-service/internal/core/domain"
)

// ParseFeatures decodes a prediction request body and runs the ordered
// validation checklist. The returned error always matches one of the
// domain.ErrInvalidJSON / domain.ErrNoFeatures / domain.ErrFeatures* errors.
func ParseFeatures(body []byte) (domain.FeatureVector, error) {
	var fv domain.FeatureVector

	doc, err := decodeDocument(body)
	if err != nil {
		return fv, err
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return fv, domain.ErrNoFeatures
	}
	raw, ok := obj["features"]
	if !ok {
		return fv, domain.ErrNoFeatures
	}

	list, ok := raw.([]interface{})
	if !ok {
		return fv, domain.ErrFeaturesNotList
	}
	if len(list) != domain.FeatureCount {
		return fv, domain.ErrFeaturesLength
	}

	for i, elem := range list {
		v, err := realNumber(elem)
		if err != nil {
			return fv, fmt.Errorf("%w: element %d: %v", domain.ErrFeaturesNotNumbers, i, err)
		}
		fv[i] = v
	}
	return fv, nil
}

func decodeDocument(body []byte) (interface{}, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", domain.ErrInvalidJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", domain.ErrInvalidJSON)
	}
	return doc, nil
}

// realNumber accepts only JSON number literals written as reals (with a
// fraction or exponent). Integer literals such as 5 are rejected.
func realNumber(elem interface{}) (float64, error) {
	n, ok := elem.(json.Number)
	if !ok {
		return 0, fmt.Errorf("got %T", elem)
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return 0, fmt.Errorf("integer literal %s", n)
	}
	v, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return v, nil
}
