package handlers

import (
	"iris-predictor-service/internal/adapters/primary/http/middleware"
	"iris-predictor-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	predictionSvc *services.PredictionService
	logger        *log.Entry
}

func New(predictionSvc *services.PredictionService, logger *log.Entry) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		logger:        logger.WithField("component", "IrisPredictor"),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes, predictRoute string) {
	r.POST(predictRoute, h.Predict)
}

func (h *Handler) requestLogger(c *gin.Context) *log.Entry {
	if id := c.GetString(middleware.ContextKeyRequestID); id != "" {
		return h.logger.WithField("request_id", id)
	}
	return h.logger
}
