package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func UserRoutes(rg *gin.RouterGroup, ctrl *controllers.UserController) {
	users := rg.Group("/users")
	{
		users.GET("/list", ctrl.List)
		users.GET("/:id", ctrl.Get)
		users.POST("/:id", ctrl.Create)
		users.PUT("/:id", ctrl.Update)
		users.DELETE("/:id", ctrl.Delete)
		users.POST("/:id/increment_points", ctrl.IncrementPoints)
		users.POST("/:id/decrement_points", ctrl.DecrementPoints)
	}
}
