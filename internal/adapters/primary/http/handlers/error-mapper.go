package handlers

import (
	"errors"
	"net/http"

	"iris-predictor-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// badRequestErrors are written back verbatim, one per line.
var badRequestErrors = []error{
	domain.ErrInvalidJSON,
	domain.ErrNoFeatures,
	domain.ErrFeaturesNotList,
	domain.ErrFeaturesLength,
	domain.ErrFeaturesNotNumbers,
}

func mapDomainError(c *gin.Context, logger *log.Entry, err error) {
	for _, target := range badRequestErrors {
		if !errors.Is(err, target) {
			continue
		}
		if target == domain.ErrInvalidJSON {
			logger.WithError(err).Error("IrisPredictor: invalid request body")
		} else {
			logger.WithError(err).Warn("IrisPredictor: rejected input")
		}
		c.String(http.StatusBadRequest, "%s\n", target.Error())
		return
	}

	logger.WithError(err).Error("IrisPredictor: prediction failed")
	c.AbortWithStatus(http.StatusInternalServerError)
}
