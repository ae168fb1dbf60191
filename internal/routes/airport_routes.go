package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func AirportRoutes(rg *gin.RouterGroup, ctrl *controllers.AirportController) {
	airports := rg.Group("/airports")
	{
		airports.GET("/list", ctrl.List)
		airports.GET("/direct-connections", ctrl.DirectConnections)
		airports.GET("/:id", ctrl.Get)
		airports.POST("/:id", ctrl.Create)
		airports.PUT("/:id", ctrl.Update)
		airports.DELETE("/:id", ctrl.Delete)
	}
}
