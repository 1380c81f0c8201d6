// internal/tts/speaker.go
package tts

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
)

var (
	ErrEmptyText   = errors.New("tts: text is empty")
	ErrUnavailable = errors.New("tts: unavailable")
)

// Speaker は単語をその場で読み上げます。再生の完了は待ちません。
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// CommandSpeaker は外部コマンド (macOS の say など) で読み上げます。
// 実行されるのは `<Command> -v <Voice> -- <text>`、Voice が空なら `<Command> -- <text>`。
// text は "-" で始まってもオプションとして解釈されません。
type CommandSpeaker struct {
	Command string
	Voice   string
}

func NewCommandSpeaker(command, voice string) *CommandSpeaker {
	return &CommandSpeaker{Command: command, Voice: voice}
}

func (s *CommandSpeaker) args(text string) []string {
	if s.Voice == "" {
		return []string{"--", text}
	}
	return []string{"-v", s.Voice, "--", text}
}

// Speak はプロセスを起動した時点で戻ります。終了は別 goroutine で回収します。
// 呼び出し元のリクエストが終わっても再生を止めないよう、ctx はログ用にだけ使います。
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	logger := middleware.GetLogger(ctx).With("command", s.Command)

	cmd := exec.Command(s.Command, s.args(text)...)
	if err := cmd.Start(); err != nil {
		logger.Warn("Failed to start speech command", "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warn("Speech command exited with error", "error", err)
		}
	}()
	return nil
}

// NopSpeaker は読み上げが無効な環境用です。
type NopSpeaker struct{}

func (NopSpeaker) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return ErrUnavailable
}
