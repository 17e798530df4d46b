package server

import (
	"context"
	"fmt"
	"log/slog"
	"team-retro-system/config"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/httpclient"
	"team-retro-system/internal/global/logger"
	"team-retro-system/internal/global/middleware"
	internalOtel "team-retro-system/internal/global/otel"
	internalSentry "team-retro-system/internal/global/sentry"
	"team-retro-system/internal/module"
	"team-retro-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()
	database.InitRedis()

	httpclient.Init()

	if err := internalSentry.Init(); err != nil {
		log.Error("Failed to init Sentry", "error", err)
	}

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(internalSentry.Middleware())
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
		defer func() {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("Failed to shutdown TracerProvider", "error", err)
			}
		}()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
