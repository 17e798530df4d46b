package user

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModuleUser struct{}

func (*ModuleUser) GetName() string {
	return "User"
}

func (*ModuleUser) Init() {
	log = logger.New("User")
}
