package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func RouteRoutes(rg *gin.RouterGroup, ctrl *controllers.RouteController) {
	r := rg.Group("/routes")
	{
		r.GET("/:id", ctrl.Get)
		r.POST("/:id", ctrl.Create)
		r.PUT("/:id", ctrl.Update)
		r.DELETE("/:id", ctrl.Delete)
	}
}
