package main

import (
	"github.com/osse101/Alchemy_Go/internal/config"
	"github.com/osse101/Alchemy_Go/internal/logger"
)

func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-setup", cfg.Version, cfg.Environment, false))
}
