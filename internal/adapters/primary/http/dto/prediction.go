package dto

import (
	"encoding/json"
	"fmt"

	"iris-predictor-service/internal/core/domain"
)

type PredictionResponse struct {
	PredictedClass domain.ClassLabel `json:"predicted_class"`
}

func ToPredictionResponse(label domain.ClassLabel) PredictionResponse {
	return PredictionResponse{PredictedClass: label}
}

// Body renders the response with a ": " key separator and a trailing
// newline, byte-compatible with the clients of the original endpoint.
func (r PredictionResponse) Body() ([]byte, error) {
	label, err := json.Marshal(r.PredictedClass)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("{\"predicted_class\": %s}\n", label)), nil
}

type HealthResponse struct {
	Status  string `json:"status"`
	Model   string `json:"model"`
	Samples int    `json:"samples"`
}
