package comment

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
)

var log *slog.Logger

type ModuleComment struct{}

func (*ModuleComment) GetName() string {
	return "Comment"
}

func (*ModuleComment) Init() {
	log = logger.New("Comment")
}
