package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

// pathID parses the named path parameter as a numeric id.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "ID must be a number")
	}
	return id, nil
}

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "invalid payload")
}
