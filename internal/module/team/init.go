package team

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTeam struct{}

func (*ModuleTeam) GetName() string {
	return "Team"
}

func (*ModuleTeam) Init() {
	log = logger.New("Team")
}
