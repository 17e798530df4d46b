package retro

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModuleRetro struct{}

func (*ModuleRetro) GetName() string {
	return "Retro"
}

func (*ModuleRetro) Init() {
	log = logger.New("Retro")
}
