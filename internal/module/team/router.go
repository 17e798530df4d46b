package team

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleTeam) InitRouter(r *gin.RouterGroup) {
	teamGroup := r.Group("/team")

	commonGroup := teamGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/create", CreateTeam)
		commonGroup.GET("/my-list", MyTeams)
		commonGroup.GET("/:team_id/members", ListMembers)
		commonGroup.POST("/member/add", AddMember)
		commonGroup.DELETE("/member/remove", RemoveMember)
		commonGroup.PUT("/member/lead", SetLead)
	}
}
