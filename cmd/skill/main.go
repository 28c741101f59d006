package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"feedskill/internal/adapters/alexa"
	"feedskill/internal/config"
	"feedskill/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{}).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	handler, err := alexa.NewSkill(cfg, log)
	if err != nil {
		log.Error("failed to initialize skill", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	if err := alexa.Serve(cfg.Addr, alexa.NewRouter(handler, log), log); err != nil {
		log.Error("skill endpoint stopped", "error", err)
		os.Exit(1)
	}
}
