package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/assessments"
	"placement-backend/internal/shared/config"
	"placement-backend/internal/shared/metrics"
	"placement-backend/internal/shared/server/middleware"
	"placement-backend/internal/shared/server/respond"
	"placement-backend/internal/shared/storage/db"
	"placement-backend/internal/textquality"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	api.Use(
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE": {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost {
					return "ANALYZE"
				}
				return ""
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.ConnectAndMigrate(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("database unavailable, falling back to memory: %v", err)
		} else {
			sqlDB = dbConn
		}
	}

	var repo assessments.Repo
	if sqlDB != nil {
		repo = &assessments.PGRepo{DB: sqlDB}
	} else {
		repo = assessments.NewMemoryRepo()
	}
	tqCfg := textquality.DefaultConfig()
	if cfg.QualityThreshold > 0 {
		tqCfg.NeedsImprovement = cfg.QualityThreshold
	}
	svc := &assessments.Service{Repo: repo, Analyzer: textquality.New(tqCfg)}
	handler := assessments.NewHandler(svc)

	registerMeRoutes(api)
	handler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
