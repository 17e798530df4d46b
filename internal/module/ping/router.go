package ping

import (
	"team-retro-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

func (*ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong")
	})
}
