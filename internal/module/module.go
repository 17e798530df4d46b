package module

import (
	"team-retro-system/internal/module/card"
	"team-retro-system/internal/module/comment"
	"team-retro-system/internal/module/ping"
	"team-retro-system/internal/module/retro"
	"team-retro-system/internal/module/team"
	"team-retro-system/internal/module/template"
	"team-retro-system/internal/module/user"
	"team-retro-system/internal/module/vote"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&team.ModuleTeam{},
		&template.ModuleTemplate{},
		&retro.ModuleRetro{},
		&card.ModuleCard{},
		&vote.ModuleVote{},
		&comment.ModuleComment{},
	})
}
