package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func HotelRoutes(rg *gin.RouterGroup, ctrl *controllers.HotelController) {
	hotels := rg.Group("/hotels")
	{
		hotels.GET("/list", ctrl.List)
		hotels.GET("/:id", ctrl.Get)
		hotels.POST("/:id", ctrl.Create)
		hotels.PUT("/:id", ctrl.Update)
		hotels.DELETE("/:id", ctrl.Delete)
	}
}
