// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
)

// RouterOptions はルーター全体に掛けるミドルウェアの設定です。
type RouterOptions struct {
	Logger         *slog.Logger
	CORS           cors.Options
	RequestTimeout time.Duration
}

// NewRouter は API のルーティングを組み立てます。
func NewRouter(opts RouterOptions, quiz *QuizHandler, progress *ProgressHandler, speech *SpeechHandler, root *RootHandler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(opts.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/", root.Banner)
	r.Get("/health", root.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/levels", quiz.GetLevels)
		r.Get("/word/{level}", quiz.GetWord)
		r.Get("/review/{level}", quiz.GetReviewList)

		r.Route("/vocab", func(r chi.Router) {
			r.Post("/reload", quiz.ReloadVocabulary)
			r.Get("/{level}", quiz.GetVocabulary)
		})

		r.Post("/answer", quiz.PostAnswer)

		r.Get("/progress", progress.GetProgress)
		r.Post("/progress", progress.PostProgress)

		r.Post("/speak", speech.Speak)
		r.Get("/tts", speech.GetAudio)
	})

	return r
}
