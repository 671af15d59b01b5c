package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/configs"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	log := configs.NewLogger()
	defer log.Sync()

	configs.ConnectDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedLookups(); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	r := gin.Default()
	r.Static("/uploads", "./uploads")

	hub := routes.RegisterRoutes(r, cfg, log)
	go hub.Run()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	hub.Stop()
	log.Info("bye")
}
