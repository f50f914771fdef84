package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery turns a panic into a bare 500 and logs it through logrus.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(ContextKeyRequestID),
			"panic":      recovered,
		}).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
