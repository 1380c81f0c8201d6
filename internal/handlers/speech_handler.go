// internal/handlers/speech_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/tts"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/webutil"
)

type SpeechHandler struct {
	speaker tts.Speaker
	audio   tts.AudioSource
	logger  *slog.Logger
}

func NewSpeechHandler(speaker tts.Speaker, audio tts.AudioSource, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if speaker == nil {
		speaker = tts.NopSpeaker{}
	}
	if audio == nil {
		audio = tts.NewCachedAudio("", "", nil)
	}
	return &SpeechHandler{speaker: speaker, audio: audio, logger: logger}
}

func textParam(r *http.Request) (string, error) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		return "", model.NewAppError("INVALID_QUERY_PARAM", "textは必須項目です。", "text", model.ErrInvalidInput)
	}
	return text, nil
}

// Speak はサーバー側で読み上げを開始するハンドラ。再生の完了は待たない。
// 読み上げに失敗しても 200 で {"status":"error"} を返す。
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Speak"))

	text, err := textParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.speaker.Speak(r.Context(), text); err != nil {
		logger.Warn("Speech failed", slog.String("error", err.Error()))
		webutil.RespondWithJSON(w, http.StatusOK, model.SpeakResponse{Status: model.SpeakStatusError, Message: err.Error()}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SpeakResponse{Status: model.SpeakStatusPlaying}, logger)
}

// GetAudio は合成音声 (MP3) を返すハンドラ
func (h *SpeechHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAudio"))

	text, err := textParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	data, err := h.audio.Audio(r.Context(), text)
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			err = model.NewAppError("INVALID_QUERY_PARAM", "textは必須項目です。", "text", model.ErrInvalidInput)
		} else {
			logger.Warn("Audio unavailable", slog.String("error", err.Error()))
			err = model.NewAppError("TTS_UNAVAILABLE", "音声合成を利用できません。", "", errors.Join(model.ErrUnavailable, err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", tts.AudioContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
