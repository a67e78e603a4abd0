package main

import (
	"log"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/logger"
	"github.com/RidgwayA/cal-tracker/routes"
	"github.com/RidgwayA/cal-tracker/services"

	"go.uber.org/zap"
)

func main() {
	l, err := logger.Init()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	config.InitDB()

	hub := services.NewRealtimeHub()
	services.InitRealtime(hub)

	cfg := config.Load()
	r := routes.SetupRouter(hub)

	zap.L().Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
