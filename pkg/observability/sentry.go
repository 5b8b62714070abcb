package observability

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/pkg/middleware/requestid"
)

// InitSentry configures the global Sentry client. With an empty dsn it is a
// no-op. The returned func flushes buffered events.
func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureErr reports err when Sentry is configured.
func CaptureErr(err error) {
	if err != nil && sentry.CurrentHub().Client() != nil {
		sentry.CaptureException(err)
	}
}

// GinMiddleware reports the errors attached to 5xx responses.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < http.StatusInternalServerError || len(c.Errors) == 0 {
			return
		}
		hub := sentry.CurrentHub()
		if hub.Client() == nil {
			return
		}
		hub = hub.Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("route", c.FullPath())
			scope.SetTag("method", c.Request.Method)
			scope.SetTag("request_id", requestid.Value(c))
		})
		for _, ginErr := range c.Errors {
			hub.CaptureException(ginErr.Err)
		}
	}
}
