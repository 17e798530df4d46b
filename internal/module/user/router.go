package user

import (
	"team-retro-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", Register)
		userGroup.POST("/login", Login)
	}

	authGroup := userGroup.Use(middleware.Auth(0))
	{
		authGroup.GET("/me", Me)
	}
}
