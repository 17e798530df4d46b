package ping

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModulePing struct{}

func (*ModulePing) GetName() string {
	return "Ping"
}

func (*ModulePing) Init() {
	log = logger.New("Ping")
}
