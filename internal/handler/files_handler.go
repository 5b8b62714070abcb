package handler

import (
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/response"
	"github.com/Quinhas/sgpg-api/pkg/storage"
)

// FilesHandler serves objects of the local blob store behind signed tokens.
type FilesHandler struct {
	store *storage.LocalStorage
}

// NewFilesHandler constructs FilesHandler.
func NewFilesHandler(store *storage.LocalStorage) *FilesHandler {
	return &FilesHandler{store: store}
}

// Serve godoc
// @Summary Download a stored file through a signed token
// @Tags Files
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 403 {object} errors.Error
// @Router /files/{token} [get]
func (h *FilesHandler) Serve(c *gin.Context) {
	key, err := h.store.Resolve(c.Param("token"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid or expired link"))
		return
	}
	file, err := h.store.Open(key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
			return
		}
		response.Error(c, appErrors.Internal(err, "failed to open file"))
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Internal(err, "failed to open file"))
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Header("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	http.ServeContent(c.Writer, c.Request, path.Base(key), info.ModTime(), file)
}

// Routes returns the download route.
func (h *FilesHandler) Routes() []Route {
	return []Route{{Method: "GET", Path: "/files/:token", Handler: h.Serve}}
}
