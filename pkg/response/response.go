package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

// Envelope represents the common success contract.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// JSON sends a success response.
func JSON(c *gin.Context, status int, message string, data interface{}) {
	noStore(c)
	c.JSON(status, Envelope{Message: message, Data: data})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, message, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// Error sends an error response converting the error to the common structure.
// Server-side failures are attached to the context so the logging and error
// reporting middleware can see the cause the body hides.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	noStore(c)
	c.AbortWithStatusJSON(appErr.Status, appErr)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
