package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travel_api/internal/controllers"
	"travel_api/internal/metrics"
	"travel_api/internal/middleware"
)

// Deps carries the handlers the router dispatches to. Everything is
// constructed in main and injected here.
type Deps struct {
	Airlines  *controllers.AirlineController
	Airports  *controllers.AirportController
	Routes    *controllers.RouteController
	Hotels    *controllers.HotelController
	Users     *controllers.UserController
	Posts     *controllers.PostController
	Documents *controllers.DocumentController
	Health    *controllers.HealthController
	Metrics   *metrics.Metrics
}

// SetupRouter builds the static verb+path table over the injected
// handlers.
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	v1 := r.Group("/api/v1")
	AirlineRoutes(v1, d.Airlines)
	AirportRoutes(v1, d.Airports)
	RouteRoutes(v1, d.Routes)
	HotelRoutes(v1, d.Hotels)
	UserRoutes(v1, d.Users)
	PostRoutes(v1, d.Posts)
	DocumentRoutes(v1, d.Documents)

	r.GET("/health", d.Health.Show)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
