// Package bootstrap assembles configuration, storage, and the HTTP stack
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Sufiyanali07/erp-backend/internal/app/controllers"
	appRepos "github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	appRoutes "github.com/Sufiyanali07/erp-backend/internal/app/routes"
	appServices "github.com/Sufiyanali07/erp-backend/internal/app/services"
	"github.com/Sufiyanali07/erp-backend/internal/config"
	"github.com/Sufiyanali07/erp-backend/internal/db"
	appMiddleware "github.com/Sufiyanali07/erp-backend/internal/middleware"
	pkgAuth "github.com/Sufiyanali07/erp-backend/internal/pkg/auth"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/logger"
	"github.com/Sufiyanali07/erp-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserRepo       appRepos.IUserRepository
	FeeRepo        appRepos.IFeeRepository
	DocumentRepo   appRepos.IDocumentRepository
	ExamRepo       appRepos.IExamRepository
	ResultRepo     appRepos.IResultRepository
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase builds the lazy connection provider. The store is not
// dialed here; the first request (or the seeder) triggers the connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) *db.Provider {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Database provider initialized")
	return db.NewProvider(cfg, lgr)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, provider *db.Provider, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.UserRepo = appRepos.NewUserRepository(provider)
	deps.FeeRepo = appRepos.NewFeeRepository(provider)
	deps.DocumentRepo = appRepos.NewDocumentRepository(provider)
	deps.ExamRepo = appRepos.NewExamRepository(provider)
	deps.ResultRepo = appRepos.NewResultRepository(provider)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(deps.UserRepo, deps.JWTService, lgr)
	feeService := appServices.NewFeeService(deps.FeeRepo)
	documentService := appServices.NewDocumentService(deps.DocumentRepo)
	examService := appServices.NewExamService(deps.ExamRepo, deps.ResultRepo)
	adminService := appServices.NewAdminService(deps.UserRepo, deps.FeeRepo)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(authService, lgr),
		Fee:      appControllers.NewFeeController(feeService, deps.UserRepo),
		Document: appControllers.NewDocumentController(documentService, deps.UserRepo),
		Exam:     appControllers.NewExamController(examService, deps.UserRepo),
		Admin:    appControllers.NewAdminController(adminService),
	}

	return deps, nil
}

// SeedDefaults provisions the configured admin account. Connection errors
// are returned so the caller can decide whether startup should proceed.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if err := seed.EnsureAdmin(ctx, deps.UserRepo, cfg); err != nil {
		return fmt.Errorf("admin seed failed: %w", err)
	}
	return nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.Setup(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
