package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"socialmedia/api/handlers"
	"socialmedia/api/routes"
	"socialmedia/config"
	"socialmedia/db"
	"socialmedia/logger"
	"socialmedia/services"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	logger.Init(conf.Logs.Level)
	defer logger.Sync()

	database, err := db.Connect(conf)
	if err != nil {
		logger.Log.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Log.Error("failed to close the database", zap.Error(err))
		}
	}()

	result, err := db.RunMigrations(database, conf.Migrations.Dir)
	if err != nil {
		logger.Log.Fatal("migrations failed", zap.Error(err))
	}
	logger.Log.Info("migrations done",
		zap.Strings("applied", result.Applied),
		zap.Strings("skipped", result.Skipped),
	)

	h := handlers.New(
		services.NewUserService(database),
		services.NewPostService(database),
		services.NewCommentService(database),
		services.NewLikeService(database),
		services.NewFollowerService(database),
	)
	router := routes.NewRouter(h, conf.Cors.Origins)

	addr := fmt.Sprintf("%s:%d", conf.Backend.Host, conf.Backend.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Log.Info("server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}
}
