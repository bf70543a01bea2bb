package main

import (
	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/logger"
	"bizpulse-api/src/internal/server"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

func main() {
	cfg := config.Load()
	logger.Init(cfg)

	log.Infof("Application %s is starting....", cfg.App.Name)

	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatalf("Error starting server: %v", err)
	}

	log.Infof("Application %s stopped", cfg.App.Name)
}
