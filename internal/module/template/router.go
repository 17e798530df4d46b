package template

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleTemplate) InitRouter(r *gin.RouterGroup) {
	templateGroup := r.Group("/template")

	commonGroup := templateGroup.Use(middleware.Auth(0))
	{
		commonGroup.GET("/list", ListTemplates)
	}

	adminGroup := templateGroup.Use(middleware.Auth(1))
	{
		adminGroup.POST("/create", CreateTemplate)
	}
}
