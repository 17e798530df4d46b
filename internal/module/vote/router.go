package vote

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleVote) InitRouter(r *gin.RouterGroup) {
	voteGroup := r.Group("/vote")

	commonGroup := voteGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/add", AddVote)
		commonGroup.DELETE("/remove", RemoveVote)
	}
}
