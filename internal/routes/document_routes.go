package routes

import (
	"github.com/gin-gonic/gin"

	"travel_api/internal/controllers"
)

func DocumentRoutes(rg *gin.RouterGroup, ctrl *controllers.DocumentController) {
	documents := rg.Group("/documents")
	{
		documents.GET("/list", ctrl.List)
		documents.GET("/:id", ctrl.Get)
		documents.POST("/:id", ctrl.Create)
		documents.PUT("/:id", ctrl.Update)
		documents.DELETE("/:id", ctrl.Delete)
		documents.POST("/:id/touch_document", ctrl.Touch)
	}
}
