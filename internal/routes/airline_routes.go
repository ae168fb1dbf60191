package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func AirlineRoutes(rg *gin.RouterGroup, ctrl *controllers.AirlineController) {
	airlines := rg.Group("/airlines")
	{
		airlines.GET("/list", ctrl.List)
		airlines.GET("/to-airport", ctrl.ToAirport)
		airlines.GET("/:id", ctrl.Get)
		airlines.POST("/:id", ctrl.Create)
		airlines.PUT("/:id", ctrl.Update)
		airlines.DELETE("/:id", ctrl.Delete)
	}
}
