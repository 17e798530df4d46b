package card

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleCard) InitRouter(r *gin.RouterGroup) {
	cardGroup := r.Group("/card")

	commonGroup := cardGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/create", CreateCard)
		commonGroup.DELETE("/delete/:id", DeleteCard)
	}
}
