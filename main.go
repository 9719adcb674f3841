package main

import (
	"github.com/sirupsen/logrus"

	"linkedin-agent/agent"
	"linkedin-agent/config"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Fatal configuration error: %v", err)
	}

	agent.Run(cfg, logger)
}
