package retro

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleRetro) InitRouter(r *gin.RouterGroup) {
	retroGroup := r.Group("/retro")

	commonGroup := retroGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/create", CreateRetro)
		commonGroup.POST("/:retro_id/join", JoinRetro)
		commonGroup.GET("/:retro_id", GetRetroView)
		commonGroup.GET("/:retro_id/export", ExportRetro)

		// 阶段推进，每个端点对应唯一合法边
		commonGroup.POST("/:retro_id/start", StartRetro)
		commonGroup.POST("/:retro_id/to-voting", MoveToVoting)
		commonGroup.POST("/:retro_id/to-discussion", MoveToDiscussion)
		commonGroup.POST("/:retro_id/complete", CompleteRetro)
	}
}
