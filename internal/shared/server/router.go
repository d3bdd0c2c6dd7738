package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"depositready-backend/internal/diagnosis"
	"depositready-backend/internal/jurisdictions"
	"depositready-backend/internal/landlordrisk"
	"depositready-backend/internal/pmdeadlines"
	"depositready-backend/internal/services/health"
	"depositready-backend/internal/shared/config"
	"depositready-backend/internal/shared/metrics"
	"depositready-backend/internal/shared/server/middleware"
	"depositready-backend/internal/shared/server/respond"
	"depositready-backend/internal/shared/storage/db"
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
		calculatorRateLimit(cfg),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var diagnosisRepo diagnosis.Repo
	if sqlDB != nil {
		diagnosisRepo = &diagnosis.PGRepo{DB: sqlDB}
	} else {
		diagnosisRepo = diagnosis.NewMemoryRepo()
	}
	diagnosisSvc := &diagnosis.Service{Repo: diagnosisRepo}
	diagnosisHandler := diagnosis.NewHandler(diagnosisSvc)
	statesHandler := jurisdictions.NewHandler()
	riskHandler := landlordrisk.NewHandler()
	deadlinesHandler := pmdeadlines.NewHandler()
	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	statesHandler.RegisterRoutes(api)
	diagnosisHandler.RegisterRoutes(api)
	riskHandler.RegisterRoutes(api)
	deadlinesHandler.RegisterRoutes(api)

	return r
}

// calculatorRateLimit throttles the POST calculator endpoints per client IP.
// Reads stay unlimited.
func calculatorRateLimit(cfg config.Config) gin.HandlerFunc {
	rate := 2.0
	if cfg.RateLimitRPS != "" {
		if parsed, err := strconv.ParseFloat(cfg.RateLimitRPS, 64); err == nil && parsed > 0 {
			rate = parsed
		} else {
			log.Printf("invalid RATE_LIMIT_RPS %q, using default", cfg.RateLimitRPS)
		}
	}
	return middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "CALCULATORS"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"CALCULATORS": {Rate: rate, Burst: 10},
		},
	})
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
