package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemoAccounts(); err != nil {
		log.Fatalf("seed demo accounts failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
