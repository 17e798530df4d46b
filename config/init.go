package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		cfg := defaultConfig()
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				panic(err)
			}
			// 没有配置文件时允许纯环境变量启动
		} else if err := v.Unmarshal(cfg); err != nil {
			panic(err)
		}

		if err := envconfig.Process("RETROSYS", cfg); err != nil {
			panic(err)
		}
		cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))
		if cfg.Mode != ModeRelease {
			cfg.Mode = ModeDebug
		}
		instance = cfg
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessSecret: "retro-secret",
			AccessExpire: 60 * 60 * 24 * 7,
		},
		Log: Log{
			Level: "info",
		},
		Retro: Retro{
			MaxContentLength: 255,
		},
	}
}

// Set 测试用，直接替换全局配置
func Set(cfg *Config) {
	instance = cfg
	once.Do(func() {})
}
