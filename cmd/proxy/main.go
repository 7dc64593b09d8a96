package main

import (
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"netlease/internal/config"
	"netlease/internal/logger"
	"netlease/internal/proxy"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel)
	defer zlog.Sync()

	handler := proxy.New(cfg.GristAPIURL, cfg.GristAPIKey, zlog)
	router := proxy.Router(handler)

	serverAddr := fmt.Sprintf(":%s", cfg.ProxyPort)
	zlog.Info("starting records proxy", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
