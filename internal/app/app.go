package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/config"
	"github.com/hardikidentixweb/inquiry-master/internal/database"
	"github.com/hardikidentixweb/inquiry-master/internal/middleware"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/jwt"
	pkgredis "github.com/hardikidentixweb/inquiry-master/internal/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// New wires the application together. A store that cannot be reached
// here aborts startup.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		jwt.SetSecret(secret)
	} else {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// Redis only backs the rate limiter; the app runs without it.
	var rc *goredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.WithRequestID())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	}
	if cfg.IsDev() {
		corsConfig.AllowOriginFunc = allowOrigin(nil)
	} else {
		corsConfig.AllowOriginFunc = allowOrigin(cfg.AllowedOrigins)
	}
	router.Use(cors.New(corsConfig))

	if rc != nil {
		router.Use(middleware.RateLimit(rc))
	}

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
