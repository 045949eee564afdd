package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/cyber3201/foodApp/configs"
	"github.com/cyber3201/foodApp/middlewares"
	"github.com/cyber3201/foodApp/pkg/logger"
	"github.com/cyber3201/foodApp/routes"
	"github.com/cyber3201/foodApp/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Setup(cfg.LogLevel)

	// DB (in-memory for the process lifetime)
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalogue failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub := ws.NewHub()
	go hub.Run()

	orderSvc, err := routes.RegisterRoutes(r, db, cfg, hub)
	if err != nil {
		log.Fatalf("register routes failed: %v", err)
	}
	defer orderSvc.Shutdown()

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
