package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "courseadvisor/internal/app/controllers"
	appRepos "courseadvisor/internal/app/repositories"
	appRoutes "courseadvisor/internal/app/routes"
	appServices "courseadvisor/internal/app/services"
	"courseadvisor/internal/config"
	"courseadvisor/internal/db"
	appMiddleware "courseadvisor/internal/middleware"
	"courseadvisor/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	TeacherService    appServices.TeacherService
	CourseService     appServices.CourseService
	TeacherController *appControllers.TeacherController
	CourseController  *appControllers.CourseController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the ratings store handle. The SQLite file is opened
// lazily on first query, so a missing file at startup is not fatal here.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) *db.Store {
	lgr.Info().Str("path", cfg.Store.RatingsPath).Msg("Ratings store configured")
	return db.NewStore(cfg.Store.RatingsPath)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *db.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store, cfg.Store.CatalogPath)

	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseCatalog)

	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.TeacherController, deps.CourseController)

	return router
}
