// cmd/quiz.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/quiz"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/tts"
)

// 端末クイズのコマンド
const (
	cmdQuit  = ":q"
	cmdRetry = ":r"
	cmdSpeak = ":s"
)

func newQuizCmd() *cobra.Command {
	var (
		level string
		retry bool
		speak bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive flashcard quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := middleware.GetLogger(ctx)
			cfg := config.Cfg

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			vocab, err := a.vocab.FindByLevel(ctx, level)
			if err != nil {
				return err
			}
			if len(vocab) == 0 {
				return fmt.Errorf("no data found for level %q (run `seed` or `fetch` first)", level)
			}

			var speaker tts.Speaker = tts.NopSpeaker{}
			if speak {
				speaker = newSpeaker(cfg.TTS, logger)
			}

			r := &quizRunner{
				in:       bufio.NewScanner(cmd.InOrStdin()),
				out:      cmd.OutOrStdout(),
				session:  quiz.NewSession(level, vocab, nil),
				progress: a.progress,
				speaker:  speaker,
				autoRead: speak,
			}
			return r.run(ctx, retry)
		},
	}
	cmd.Flags().StringVar(&level, "level", "n5", "level to study")
	cmd.Flags().BoolVar(&retry, "retry", false, "only ask words previously answered incorrectly")
	cmd.Flags().BoolVar(&speak, "speak", false, "read each word aloud")
	return cmd
}

// quizRunner は端末上で出題・採点・進捗の記録を繰り返します。
type quizRunner struct {
	in       *bufio.Scanner
	out      io.Writer
	session  *quiz.Session
	progress repository.ProgressRepository
	speaker  tts.Speaker
	autoRead bool
}

var errQuit = errors.New("quit")

func (r *quizRunner) run(ctx context.Context, retry bool) error {
	fmt.Fprintf(r.out, "Level %s: %d words. Commands: %s quit, %s retry incorrect, %s speak\n",
		r.session.Level, len(r.session.Vocabulary), cmdQuit, cmdRetry, cmdSpeak)

	if retry {
		if err := r.retryIncorrect(ctx); err != nil {
			return err
		}
	}

	for {
		word := r.session.Next()
		if word == nil {
			fmt.Fprintln(r.out, "No words to study.")
			return nil
		}

		fmt.Fprintf(r.out, "\n%s  (%s)\n", word.Word, word.Reading)
		if r.autoRead {
			r.speak(ctx, word)
		}

		err := r.ask(ctx, word)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "Bye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ask は1単語について有効な回答が来るまで入力を読み続けます。
func (r *quizRunner) ask(ctx context.Context, word *model.VocabEntry) error {
	for {
		fmt.Fprint(r.out, "meaning> ")
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		line := strings.TrimSpace(r.in.Text())

		switch line {
		case cmdQuit:
			return errQuit
		case cmdSpeak:
			r.speak(ctx, word)
			continue
		case cmdRetry:
			if err := r.retryIncorrect(ctx); err != nil {
				return err
			}
			continue
		}

		status, err := r.session.Submit(line)
		if errors.Is(err, model.ErrInvalidInput) {
			fmt.Fprintln(r.out, "Please type an answer.")
			continue
		}
		if err != nil {
			return err
		}

		if status == model.StatusCorrect {
			fmt.Fprintln(r.out, "Correct!")
		} else {
			fmt.Fprintf(r.out, "Incorrect. Answer: %s\n", word.Meaning)
		}
		if err := r.progress.Update(ctx, r.session.Level, word.Word, status); err != nil {
			middleware.GetLogger(ctx).Error("Failed to save progress", slog.String("word", word.Word), slog.Any("error", err))
			return err
		}
		return nil
	}
}

func (r *quizRunner) retryIncorrect(ctx context.Context) error {
	progress, err := r.progress.Load(ctx)
	if err != nil {
		return err
	}
	n := r.session.RetryIncorrect(progress.Level(r.session.Level))
	if n == 0 {
		fmt.Fprintln(r.out, service.NoIncorrectWordsMessage)
		return nil
	}
	fmt.Fprintf(r.out, "Retry mode: %d incorrect words. Applies from the next word.\n", n)
	return nil
}

func (r *quizRunner) speak(ctx context.Context, word *model.VocabEntry) {
	text := word.Reading
	if text == "" {
		text = word.Word
	}
	if err := r.speaker.Speak(ctx, text); err != nil && !errors.Is(err, tts.ErrUnavailable) {
		fmt.Fprintf(r.out, "TTS error: %v\n", err)
	}
}
