package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"feedskill/internal/adapters/alexa"
	"feedskill/internal/config"
	"feedskill/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{Format: "json"}).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	// CloudWatch ingests one JSON object per line.
	format := cfg.LogFormat
	if format == "" {
		format = "json"
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: format})

	handler, err := alexa.NewSkill(cfg, log)
	if err != nil {
		log.Error("failed to initialize skill", "error", err)
		os.Exit(1)
	}

	lambda.Start(handler.HandleLambda)
}
