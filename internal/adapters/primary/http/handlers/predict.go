package handlers

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"iris-predictor-service/internal/adapters/primary/http/dto"
	"iris-predictor-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Predict(c *gin.Context) {
	logger := h.requestLogger(c)

	// Nothing raised while handling a request may reach the router.
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("stack", string(debug.Stack())).
				WithError(fmt.Errorf("panic: %v", r)).
				Error("IrisPredictor: unexpected failure")
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}()

	logger.Info("IrisPredictor: reading file")
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		mapDomainError(c, logger, fmt.Errorf("read body: %w", err))
		return
	}

	features, err := services.ParseFeatures(body)
	if err != nil {
		mapDomainError(c, logger, err)
		return
	}

	label, err := h.predictionSvc.Predict(c.Request.Context(), features)
	if err != nil {
		mapDomainError(c, logger, err)
		return
	}
	logger.Infof("IrisPredictor: the prediction is %s", label)

	payload, err := dto.ToPredictionResponse(label).Body()
	if err != nil {
		mapDomainError(c, logger, fmt.Errorf("encode response: %w", err))
		return
	}

	logger.Info("IrisPredictor: Sending the results")
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
