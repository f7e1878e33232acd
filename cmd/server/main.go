package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jencrm_backend/internal/config"
	"jencrm_backend/internal/database"
	"jencrm_backend/internal/middleware"
	"jencrm_backend/internal/router"
	"jencrm_backend/pkg/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	// The process must not serve traffic without a working pool.
	db, err := database.Connect(cfg)
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	utils.LogInfo("Database connection established", map[string]interface{}{
		"host": cfg.DBHost, "port": cfg.DBPort, "dbname": cfg.DBName,
	})

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())
	engine.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, db)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Failed to start server")
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		utils.LogError(err, "Server forced to shutdown")
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	utils.LogInfo("Server stopped")
}
