package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hairday/salon-booking/internal/config"
	"github.com/hairday/salon-booking/internal/logger"
	"github.com/hairday/salon-booking/internal/middleware"
	"github.com/hairday/salon-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl := logger.New(cfg.Environment)
	defer zl.Sync()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, zl)

	zl.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
