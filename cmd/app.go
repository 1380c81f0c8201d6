// cmd/app.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/cache"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/quiz"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/tts"
)

// app はコマンド間で共有する依存関係をまとめたものです。
type app struct {
	cfg      config.Config
	vocab    *cache.VocabCache
	progress repository.ProgressRepository

	quizService     service.QuizService
	progressService service.ProgressService

	closers []func() error
}

func newApp(cfg config.Config, logger *slog.Logger) (*app, error) {
	progress, closeStore, err := openProgressStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	vocab := cache.NewVocabCache(repository.NewFileVocabRepository(cfg.Data.Dir))
	a := &app{
		cfg:             cfg,
		vocab:           vocab,
		progress:        progress,
		quizService:     service.NewQuizService(vocab, progress, quiz.NewSelector(nil)),
		progressService: service.NewProgressService(progress),
	}
	a.closers = append(a.closers, closeStore)
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openProgressStore は storage.driver に応じた進捗ストアを開きます。
func openProgressStore(cfg config.Config, logger *slog.Logger) (repository.ProgressRepository, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverJSON:
		logger.Info("Using JSON progress store", slog.String("path", cfg.Data.ProgressFile))
		return repository.NewJSONProgressRepository(cfg.Data.ProgressFile), func() error { return nil }, nil
	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		if cfg.Storage.DSN == "" {
			return nil, nil, fmt.Errorf("storage.dsn is required for driver %q", cfg.Storage.Driver)
		}
		db, err := repository.NewDB(cfg.Storage.Driver, cfg.Storage.DSN, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open progress database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("get sql.DB: %w", err)
		}
		logger.Info("Using SQL progress store", slog.String("driver", cfg.Storage.Driver))
		return repository.NewGormProgressRepository(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newSpeaker は tts.engine に応じた読み上げ方法を返します。
func newSpeaker(cfg config.TTSConfig, logger *slog.Logger) tts.Speaker {
	switch cfg.Engine {
	case "command":
		return tts.NewCommandSpeaker(cfg.Command, cfg.Voice)
	case "none", "":
		return tts.NopSpeaker{}
	default:
		logger.Warn("Unknown tts engine, speech disabled", slog.String("engine", cfg.Engine))
		return tts.NopSpeaker{}
	}
}

// newAudioSource は APIキーがあれば Google Cloud TTS を使う音声ソースを返します。
// キーがなければキャッシュ済みの音声だけを返します。
func newAudioSource(ctx context.Context, cfg config.TTSConfig, logger *slog.Logger) (tts.AudioSource, func() error) {
	noop := func() error { return nil }
	if cfg.GoogleAPIKey == "" {
		logger.Info("Google TTS API key not set, audio synthesis disabled")
		return tts.NewCachedAudio(cfg.CacheDir, cfg.LanguageCode, nil), noop
	}

	synth, err := tts.NewGoogleSynthesizer(ctx, cfg.GoogleAPIKey, cfg.LanguageCode)
	if err != nil {
		logger.Error("Failed to create Google TTS client, audio synthesis disabled", slog.Any("error", err))
		return tts.NewCachedAudio(cfg.CacheDir, cfg.LanguageCode, nil), noop
	}
	return tts.NewCachedAudio(cfg.CacheDir, cfg.LanguageCode, synth), synth.Close
}
