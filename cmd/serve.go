// cmd/serve.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/handlers"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 120 * time.Second
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Cfg
			if port != "" {
				cfg.Server.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen address (overrides server.port)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := middleware.GetLogger(ctx)

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close resources", slog.Any("error", err))
		}
	}()

	audio, closeAudio := newAudioSource(ctx, cfg.TTS, logger)
	defer closeAudio()

	quizHandler := handlers.NewQuizHandler(a.quizService, logger)
	progressHandler := handlers.NewProgressHandler(a.progressService, logger)
	speechHandler := handlers.NewSpeechHandler(newSpeaker(cfg.TTS, logger), audio, logger)
	rootHandler := handlers.NewRootHandler(a.progressService, cfg.Storage.Driver, logger)

	router := handlers.NewRouter(handlers.RouterOptions{
		Logger: logger,
		CORS: cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		},
		RequestTimeout: requestTimeout,
	}, quizHandler, progressHandler, speechHandler, rootHandler)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("address", server.Addr), slog.String("data_dir", cfg.Data.Dir))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to start", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}
