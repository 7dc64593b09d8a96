package main

import (
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"netlease/internal/config"
	"netlease/internal/logger"
	"netlease/internal/pkg/grist"
	"netlease/internal/pkg/newsapi"
	"netlease/internal/routes"
	"netlease/internal/tenants"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel)
	defer zlog.Sync()

	gristClient := grist.New(cfg.GristAPIURL, cfg.GristTable, cfg.GristAPIKey)
	newsClient := newsapi.New(cfg.NewsAPIURL, cfg.NewsAPIKey)
	store := tenants.NewStore(gristClient, zlog)

	router := routes.SetupRouter(store, newsClient, zlog)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("starting directory server", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
