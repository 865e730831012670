package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lvogel/admithub/docs" // Import generated swagger docs
	appControllers "github.com/lvogel/admithub/internal/app/controllers"
	appMigrations "github.com/lvogel/admithub/internal/app/migrations"
	appRepos "github.com/lvogel/admithub/internal/app/repositories"
	appRoutes "github.com/lvogel/admithub/internal/app/routes"
	appServices "github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/config"
	"github.com/lvogel/admithub/internal/db"
	appMiddleware "github.com/lvogel/admithub/internal/middleware"
	pkgAuth "github.com/lvogel/admithub/internal/pkg/auth"
	"github.com/lvogel/admithub/internal/pkg/extraction"
	"github.com/lvogel/admithub/internal/pkg/filestorage"
	"github.com/lvogel/admithub/internal/pkg/helpers"
	"github.com/lvogel/admithub/internal/pkg/logger"
	"github.com/lvogel/admithub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	AccountService        *appServices.AccountService
	ApplicationService    *appServices.ApplicationService
	ApplicantService      *appServices.ApplicantService
	CourseService         *appServices.CourseService
	DocumentService       *appServices.DocumentService
	SkillService          *appServices.SkillService
	UploadService         *appServices.UploadService
	SettingsService       *appServices.SettingsService
	ExportService         *appServices.ExportService
	AuthController        *appControllers.AuthController
	AccountController     *appControllers.AccountController
	ApplicationController *appControllers.ApplicationController
	ApplicantController   *appControllers.ApplicantController
	CourseController      *appControllers.CourseController
	DocumentController    *appControllers.DocumentController
	SkillController       *appControllers.SkillController
	UploadController      *appControllers.UploadController
	SettingsController    *appControllers.SettingsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Extractor             *extraction.VertexClient
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Extractor, err = extraction.NewVertexClient(context.Background(), extraction.Config{
		ProjectID: cfg.AI.ProjectID,
		Region:    cfg.AI.Region,
		Model:     cfg.AI.Model,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize extraction client")
		return nil, fmt.Errorf("failed to initialize extraction client: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository, deps.JWTService)
	deps.AccountService = appServices.NewAccountService(deps.Repos.AccountRepository)
	deps.ApplicationService = appServices.NewApplicationService(
		dbPool,
		deps.Repos.SettingsRepository,
		deps.Repos.ApplicantRepository,
		deps.Repos.DegreeRepository,
		deps.Repos.CourseRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.UploadRepository,
		deps.Extractor,
	)
	deps.ApplicantService = appServices.NewApplicantService(
		dbPool,
		deps.Repos.ApplicantRepository,
		deps.Repos.DegreeRepository,
		deps.Repos.CourseRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.SkillRepository,
		deps.Repos.UploadRepository,
	)
	deps.CourseService = appServices.NewCourseService(dbPool, deps.Repos.CourseRepository, deps.Repos.DegreeRepository, deps.Repos.ApplicantRepository)
	deps.DocumentService = appServices.NewDocumentService(dbPool, deps.Repos.DocumentRepository, deps.Repos.ApplicantRepository)
	deps.SkillService = appServices.NewSkillService(dbPool, deps.Repos.SkillRepository, deps.Repos.ApplicantRepository)
	deps.UploadService = appServices.NewUploadService(deps.Repos.UploadRepository, deps.FileStorage)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository)
	deps.ExportService = appServices.NewExportService(
		deps.Repos.ApplicantRepository,
		deps.Repos.DegreeRepository,
		deps.Repos.CourseRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.SkillRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AccountController = appControllers.NewAccountController(deps.AccountService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.ApplicantController = appControllers.NewApplicantController(deps.ApplicantService, deps.ExportService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService)
	deps.SkillController = appControllers.NewSkillController(deps.SkillService)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)

	return deps, nil
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AccountController,
		deps.ApplicationController,
		deps.ApplicantController,
		deps.CourseController,
		deps.DocumentController,
		deps.SkillController,
		deps.UploadController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
