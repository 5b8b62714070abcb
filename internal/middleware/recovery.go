package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/middleware/requestid"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// Recovery turns panics into the standard 500 error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Value(c)),
			zap.Error(err),
			zap.Stack("stack"),
		)
		response.Error(c, appErrors.Internal(err, appErrors.ErrInternal.Message))
	})
}
