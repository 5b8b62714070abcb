package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/service"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// multipartOverhead is the slack allowed above the logo limit for form framing.
const multipartOverhead = 64 << 10

// LogoHandler manages instrument brand logos.
type LogoHandler struct {
	logos *service.LogoService
}

// NewLogoHandler constructs LogoHandler.
func NewLogoHandler(logos *service.LogoService) *LogoHandler {
	return &LogoHandler{logos: logos}
}

// Upload godoc
// @Summary Upload an instrument brand logo
// @Tags Instrument Brands
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Instrument brand ID"
// @Param file formData file true "png, jpeg, webp or svg"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.Error
// @Failure 413 {object} errors.Error
// @Router /instrument-brands/{id}/logo [put]
func (h *LogoHandler) Upload(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.logos.MaxBytes()+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, "logo is too large"))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "multipart field \"file\" is required"))
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Internal(err, "failed to read logo"))
		return
	}
	defer file.Close() //nolint:errcheck

	brand, err := h.logos.Upload(c.Request.Context(), id, service.LogoUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "instrument brand logo updated", brand)
}

// Download godoc
// @Summary Redirect to a time-limited logo URL
// @Tags Instrument Brands
// @Param id path int true "Instrument brand ID"
// @Success 302
// @Failure 404 {object} errors.Error
// @Router /instrument-brands/{id}/logo [get]
func (h *LogoHandler) Download(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	url, err := h.logos.URL(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, url)
}

// Routes returns the logo routes.
func (h *LogoHandler) Routes() []Route {
	return []Route{
		{Method: "PUT", Path: "/instrument-brands/:id/logo", Handler: h.Upload},
		{Method: "GET", Path: "/instrument-brands/:id/logo", Handler: h.Download},
	}
}
