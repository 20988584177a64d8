package routes

import (
	"context"
	"io"
	"net/http"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"fleetadmin/internal/config"
	"fleetadmin/internal/controllers"
	"fleetadmin/internal/middleware"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps carries everything the router needs.
type Deps struct {
	Config    *config.Config
	Log       logrus.FieldLogger
	AccessLog io.Writer
	DB        Pinger

	Gate     middleware.Authorizer
	Sessions controllers.Sessions
	Workflow controllers.Workflow
}

func SetupRouter(d Deps) *gin.Engine {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if d.AccessLog != nil {
		r.Use(ginlog.SetLogger(
			ginlog.WithWriter(d.AccessLog),
			ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
		))
	}
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(d.Config.CORS))
	r.Use(middleware.ErrorHandler(d.Log, d.Config.IsProduction()))
	r.Use(middleware.Recovery(gin.DefaultErrorWriter))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server Started!!")
	})
	r.GET("/healthz", healthz(d.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := controllers.NewAuthController(d.Sessions)
	registration := controllers.NewRegistrationController(d.Workflow)

	api := r.Group("/api")
	AdminRoutes(api, d.Gate, auth, registration)
	SuperAdminRoutes(api, d.Gate, auth, registration)

	r.NoRoute(middleware.NotFound)
	return r
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
