package database

import (
	"context"
	"fmt"
	"team-retro-system/config"
	"team-retro-system/tools"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB 多副本部署时用于投票配额的跨进程互斥，未启用时为 nil
var RDB *redis.Client

func InitRedis() {
	cfg := config.Get().Redis
	if !cfg.Enable {
		return
	}
	RDB = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tools.PanicOnErr(RDB.Ping(ctx).Err())
}
