package template

import (
	"log/slog"
	"team-retro-system/internal/global/logger"
	"team-retro-system/tools"
)

var log *slog.Logger

type ModuleTemplate struct{}

func (*ModuleTemplate) GetName() string {
	return "Template"
}

func (*ModuleTemplate) Init() {
	log = logger.New("Template")
	tools.PanicOnErr(SeedBuiltIns())
}
