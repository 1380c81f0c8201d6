// internal/quiz/session.go
package quiz

import (
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// Session は1回の学習セッションの状態 (出題プール・現在の単語・直近の採点結果) です。
// 永続化はせず、プロセス終了とともに破棄されます。
type Session struct {
	Level       string
	Vocabulary  []model.VocabEntry
	Pool        []model.VocabEntry
	Current     *model.VocabEntry
	LastOutcome model.Status

	selector *Selector
}

func NewSession(level string, vocabulary []model.VocabEntry, selector *Selector) *Session {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Session{
		Level:      level,
		Vocabulary: vocabulary,
		Pool:       append([]model.VocabEntry(nil), vocabulary...),
		selector:   selector,
	}
}

// Next は次の単語をプールから選びます。プールが空なら全単語に戻します。
// 単語帳自体が空なら nil。
func (s *Session) Next() *model.VocabEntry {
	if len(s.Pool) == 0 {
		s.Pool = append([]model.VocabEntry(nil), s.Vocabulary...)
	}
	s.Current = s.selector.Select(s.Pool, false, nil)
	s.LastOutcome = ""
	return s.Current
}

// RetryIncorrect はプールを "incorrect" の単語だけに絞ります。
// 該当がなければプールは変えずに 0 を返します。
func (s *Session) RetryIncorrect(progress model.LevelProgress) int {
	incorrect := IncorrectEntries(s.Vocabulary, progress)
	if len(incorrect) == 0 {
		return 0
	}
	s.Pool = incorrect
	return len(incorrect)
}

// Submit は現在の単語に対する回答を採点します。
// 空の回答や出題前の回答は model.ErrInvalidInput を返し、状態は変えません。
func (s *Session) Submit(answer string) (model.Status, error) {
	if s.Current == nil || IsBlank(answer) {
		return "", model.ErrInvalidInput
	}
	s.LastOutcome = Grade(answer, s.Current.Meaning)
	return s.LastOutcome, nil
}
