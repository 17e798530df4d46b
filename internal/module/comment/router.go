package comment

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleComment) InitRouter(r *gin.RouterGroup) {
	commentGroup := r.Group("/comment")

	commonGroup := commentGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/create", CreateComment)
		commonGroup.DELETE("/delete/:id", DeleteComment)
	}
}
