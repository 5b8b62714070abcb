package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/service"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// ExportHandler streams resource exports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export godoc
// @Summary Export every record of a resource
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param resource path string true "Resource name"
// @Param format query string false "csv (default), xlsx or pdf"
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /exports/{resource} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exports.Export(c.Request.Context(), c.Param("resource"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Body)
}

// Routes returns the export route.
func (h *ExportHandler) Routes() []Route {
	return []Route{{Method: "GET", Path: "/exports/:resource", Handler: h.Export}}
}
