package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialmedia/logger"
)

var kindStatusMap = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindNotFound:   http.StatusNotFound,
	KindConflict:   http.StatusConflict,
	KindIntegrity:  http.StatusInternalServerError,
	KindInternal:   http.StatusInternalServerError,
}

// Respond writes the JSON error envelope for err. Client-facing errors
// (validation, not-found, conflict) carry their message through; anything
// mapping to a 500 is replaced with a generic message and logged with
// full detail server-side.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Wrap(KindInternal, "Internal server error", err)
	}

	status, ok := kindStatusMap[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(appErr),
		)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	if len(appErr.Fields) > 0 {
		c.JSON(status, gin.H{"error": appErr.Message, "details": appErr.Fields})
		return
	}
	c.JSON(status, gin.H{"error": appErr.Message})
}
