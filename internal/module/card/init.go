package card

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModuleCard struct{}

func (*ModuleCard) GetName() string {
	return "Card"
}

func (*ModuleCard) Init() {
	log = logger.New("Card")
}
