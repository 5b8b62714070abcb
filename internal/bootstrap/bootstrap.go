// Package bootstrap wires configuration, storage and services into the HTTP router.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Quinhas/sgpg-api/api/swagger"
	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/handler"
	internalmiddleware "github.com/Quinhas/sgpg-api/internal/middleware"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/repository"
	"github.com/Quinhas/sgpg-api/internal/service"
	"github.com/Quinhas/sgpg-api/pkg/config"
	"github.com/Quinhas/sgpg-api/pkg/jobs"
	"github.com/Quinhas/sgpg-api/pkg/logger"
	corsmiddleware "github.com/Quinhas/sgpg-api/pkg/middleware/cors"
	reqidmiddleware "github.com/Quinhas/sgpg-api/pkg/middleware/requestid"
	securemiddleware "github.com/Quinhas/sgpg-api/pkg/middleware/secure"
	timeoutmiddleware "github.com/Quinhas/sgpg-api/pkg/middleware/timeout"
	"github.com/Quinhas/sgpg-api/pkg/observability"
	"github.com/Quinhas/sgpg-api/pkg/storage"
)

// filesPath is where the local blob store serves signed downloads.
const filesPath = "/files"

// Deps are the long-lived resources the router is built on. The caller owns
// and closes them. Redis may be nil.
type Deps struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Logger *zap.Logger
	Store  storage.Store
	// Files is set when Store is the local driver; it enables /files.
	Files *storage.LocalStorage
	// LogoCleanup removes superseded logo objects in the background when set.
	LogoCleanup *jobs.Queue[string]
}

// NewStore builds the blob store selected by cfg.
func NewStore(ctx context.Context, cfg *config.Config) (storage.Store, *storage.LocalStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageS3:
		s3cfg := cfg.Storage.S3
		store, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:    s3cfg.Bucket,
			Region:    s3cfg.Region,
			Endpoint:  s3cfg.Endpoint,
			PathStyle: s3cfg.PathStyle,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
			URLExpiry: cfg.Storage.SignedURLTTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.StorageLocal, "":
		signer := storage.NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)
		local, err := storage.NewLocalStorage(cfg.Storage.Dir, signer, cfg.APIPrefix+filesPath)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// NewLogoCleanup builds the queue deleting superseded logo objects from store.
// The caller starts and stops it.
func NewLogoCleanup(store storage.Store, log *zap.Logger) *jobs.Queue[string] {
	return jobs.NewQueue[string]("logo-cleanup", func(ctx context.Context, key string) error {
		err := store.Delete(ctx, key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil
		}
		return err
	}, jobs.Config{Workers: 1, MaxRetries: 3, RetryDelay: 5 * time.Second, Logger: log})
}

// NewRouter builds the gin engine serving every resource.
func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}
	cache := service.NewCacheService(repository.NewCacheRepository(deps.Redis, log), metrics, cfg.Cache.TTL, log,
		cfg.Cache.Enabled && deps.Redis != nil)
	validate := service.NewValidator()
	reg := registry.School()

	roles := newEngine[models.Role](deps.DB, reg, registry.ResourceRoles, validate, cache, metrics, log)
	employeeEngine := newEngine[models.Employee](deps.DB, reg, registry.ResourceEmployees, validate, cache, metrics, log)
	employees := service.NewEmployeeService(employeeEngine, cfg.BcryptCost)
	responsibles := newEngine[models.Responsible](deps.DB, reg, registry.ResourceResponsibles, validate, cache, metrics, log)
	students := newEngine[models.Student](deps.DB, reg, registry.ResourceStudents, validate, cache, metrics, log)
	instrumentTypes := newEngine[models.InstrumentType](deps.DB, reg, registry.ResourceInstrumentTypes, validate, cache, metrics, log)
	instrumentBrands := newEngine[models.InstrumentBrand](deps.DB, reg, registry.ResourceInstrumentBrands, validate, cache, metrics, log)
	instruments := newEngine[models.Instrument](deps.DB, reg, registry.ResourceInstruments, validate, cache, metrics, log)
	classes := newEngine[models.Class](deps.DB, reg, registry.ResourceClasses, validate, cache, metrics, log)
	events := newEngine[models.Event](deps.DB, reg, registry.ResourceEvents, validate, cache, metrics, log)

	associations := service.NewAssociationService(repository.NewAssociationRepository(deps.DB), reg, validate, metrics, log)
	exports := service.NewExportService([]service.ExportSource{
		roles, employees, responsibles, students, instrumentTypes, instrumentBrands, instruments, classes, events,
	}, metrics, log)

	providers := []handler.RouteProvider{
		handler.NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](roles),
		handler.NewEmployeeHandler(employees),
		handler.NewResourceHandler[models.Responsible, dto.CreateResponsibleRequest, dto.UpdateResponsibleRequest](responsibles),
		handler.NewResourceHandler[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest](students),
		handler.NewResourceHandler[models.InstrumentType, dto.CreateInstrumentTypeRequest, dto.UpdateInstrumentTypeRequest](instrumentTypes),
		handler.NewResourceHandler[models.InstrumentBrand, dto.CreateInstrumentBrandRequest, dto.UpdateInstrumentBrandRequest](instrumentBrands),
		handler.NewResourceHandler[models.Instrument, dto.CreateInstrumentRequest, dto.UpdateInstrumentRequest](instruments),
		handler.NewResourceHandler[models.Class, dto.CreateClassRequest, dto.UpdateClassRequest](classes),
		handler.NewAssociationHandler(associations),
		handler.NewResourceHandler[models.Event, dto.CreateEventRequest, dto.UpdateEventRequest](events),
		handler.NewExportHandler(exports),
	}
	if deps.Store != nil {
		logos := service.NewLogoService(instrumentBrands, deps.Store, cfg.Storage.MaxLogoBytes, log)
		logos.UseMetrics(metrics)
		if deps.LogoCleanup != nil {
			logos.UseCleanup(deps.LogoCleanup.Enqueue)
		}
		providers = append(providers, handler.NewLogoHandler(logos))
	}
	if deps.Files != nil {
		providers = append(providers, handler.NewFilesHandler(deps.Files))
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(internalmiddleware.Recovery(log))
	r.Use(observability.GinMiddleware())
	r.Use(internalmiddleware.RequestMetrics(metrics))
	r.Use(securemiddleware.Headers())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	var db handler.Pinger
	if deps.DB != nil {
		db = deps.DB
	}
	handler.Register(r, handler.NewMetricsHandler(metrics, db).Routes())
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(timeoutmiddleware.Middleware(cfg.RequestTimeout))
	handler.Register(api, handler.Table(providers...))

	r.NoRoute(handler.NotFound)
	return r
}

func newEngine[T any](db *sqlx.DB, reg *registry.Registry, resource string, validate *validator.Validate, cache *service.CacheService, metrics *service.MetricsService, log *zap.Logger) *service.LifecycleService[T] {
	schema := reg.MustGet(resource)
	return service.NewLifecycleService[T](schema, repository.NewLifecycleRepository[T](db, schema), validate, cache, metrics, log)
}
