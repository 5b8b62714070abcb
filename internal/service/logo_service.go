package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/storage"
)

// logoTypes maps accepted logo extensions to their content type.
var logoTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

type brandStore interface {
	FindByID(ctx context.Context, id int64) (*models.InstrumentBrand, error)
	Update(ctx context.Context, id int64, req interface{}) (*models.InstrumentBrand, error)
}

// LogoUpload is a logo file received from a client.
type LogoUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// LogoService stores instrument brand logos in a blob store and records the
// object key on the brand.
type LogoService struct {
	brands   brandStore
	store    storage.Store
	maxBytes int64
	logger   *zap.Logger
	metrics  *MetricsService
	cleanup  func(key string) error
}

// NewLogoService constructs a LogoService.
func NewLogoService(brands brandStore, store storage.Store, maxBytes int64, logger *zap.Logger) *LogoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	return &LogoService{brands: brands, store: store, maxBytes: maxBytes, logger: logger}
}

// UseCleanup routes removal of superseded logo objects through enqueue
// instead of deleting them inline.
func (s *LogoService) UseCleanup(enqueue func(key string) error) {
	s.cleanup = enqueue
}

// UseMetrics records upload outcomes on metrics.
func (s *LogoService) UseMetrics(metrics *MetricsService) {
	s.metrics = metrics
}

// MaxBytes is the largest accepted upload.
func (s *LogoService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload replaces the logo of brand id and returns the updated brand.
func (s *LogoService) Upload(ctx context.Context, id int64, upload LogoUpload) (*models.InstrumentBrand, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, contentType, ext, err := s.read(upload)
	if err != nil {
		s.metrics.RecordLogoUpload(LogoRejected, 0)
		return nil, err
	}

	key := fmt.Sprintf("instrument-brands/%d/logo-%s%s", id, uuid.NewString(), ext)
	if err := s.store.Put(ctx, key, bytes.NewReader(data), contentType); err != nil {
		s.logger.Error("logo upload failed", zap.Int64("instrumentbrand_id", id), zap.Error(err))
		s.metrics.RecordLogoUpload(LogoFailed, 0)
		return nil, appErrors.Internal(err, "failed to store logo")
	}

	updated, err := s.brands.Update(ctx, id, &dto.SetInstrumentBrandLogo{InstrumentBrandLogo: &key})
	if err != nil {
		_ = s.store.Delete(ctx, key)
		s.metrics.RecordLogoUpload(LogoFailed, 0)
		return nil, err
	}
	s.metrics.RecordLogoUpload(LogoStored, len(data))

	if brand.Logo != nil && *brand.Logo != "" && *brand.Logo != key {
		s.discard(ctx, *brand.Logo)
	}
	return updated, nil
}

// read validates upload and returns its bytes with the content type and
// extension they were accepted as.
func (s *LogoService) read(upload LogoUpload) ([]byte, string, string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := logoTypes[ext]
	if !ok {
		return nil, "", "", appErrors.Clone(appErrors.ErrInvalidArgument, "logo must be a png, jpeg, webp or svg file")
	}
	if upload.Size > s.maxBytes {
		return nil, "", "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("logo exceeds %d bytes", s.maxBytes))
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, s.maxBytes+1))
	if err != nil {
		return nil, "", "", appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status, "failed to read logo")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, "", "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("logo exceeds %d bytes", s.maxBytes))
	}
	if len(data) == 0 {
		return nil, "", "", appErrors.Clone(appErrors.ErrInvalidArgument, "logo file is empty")
	}
	if !contentMatches(contentType, data) {
		return nil, "", "", appErrors.Clone(appErrors.ErrInvalidArgument, "logo content does not match its extension")
	}
	return data, contentType, ext, nil
}

func (s *LogoService) discard(ctx context.Context, key string) {
	if s.cleanup != nil {
		if err := s.cleanup(key); err == nil {
			return
		}
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("previous logo not removed", zap.String("key", key), zap.Error(err))
	}
}

// URL returns a time-limited download link for the logo of brand id.
func (s *LogoService) URL(ctx context.Context, id int64) (string, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if brand.Logo == nil || *brand.Logo == "" {
		return "", appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("instrument brand %d has no logo", id))
	}
	url, err := s.store.URL(ctx, *brand.Logo)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("instrument brand %d has no logo", id))
		}
		return "", appErrors.Internal(err, "failed to sign logo url")
	}
	return url, nil
}

func contentMatches(contentType string, data []byte) bool {
	sniffed := http.DetectContentType(data)
	if contentType == "image/svg+xml" {
		head := strings.ToLower(string(data[:min(len(data), 512)]))
		return strings.Contains(head, "<svg") &&
			(strings.HasPrefix(sniffed, "text/xml") || strings.HasPrefix(sniffed, "text/plain"))
	}
	return sniffed == contentType
}
