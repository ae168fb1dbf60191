package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func PostRoutes(rg *gin.RouterGroup, ctrl *controllers.PostController) {
	posts := rg.Group("/posts")
	{
		posts.GET("/list", ctrl.List)
		posts.GET("/:id", ctrl.Get)
		posts.POST("/:id", ctrl.Create)
		posts.PUT("/:id", ctrl.Update)
		posts.DELETE("/:id", ctrl.Delete)
		posts.POST("/:id/append_content", ctrl.AppendContent)
		posts.POST("/:id/prepend_content", ctrl.PrependContent)
	}
}
