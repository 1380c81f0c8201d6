// internal/quiz/session_test.go
package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

func TestSession_Flow(t *testing.T) {
	vocab := []model.VocabEntry{{Word: "雨", Reading: "あめ", Meaning: "비"}}
	s := NewSession("n5", vocab, newTestSelector())

	// 出題前の回答は受け付けない
	_, err := s.Submit("비")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	// 進捗が空なら再挑戦対象はない
	assert.Equal(t, 0, s.RetryIncorrect(model.LevelProgress{}))

	got := s.Next()
	require.NotNil(t, got)
	assert.Equal(t, "雨", got.Word)

	_, err = s.Submit("   ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, model.Status(""), s.LastOutcome)

	status, err := s.Submit("비")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCorrect, status)
	assert.Equal(t, model.StatusCorrect, s.LastOutcome)

	// correct の単語は再挑戦の対象にならない
	assert.Equal(t, 0, s.RetryIncorrect(model.LevelProgress{"雨": model.StatusCorrect}))
}

func TestSession_RetryIncorrect(t *testing.T) {
	s := NewSession("n5", testEntries, newTestSelector())

	n := s.RetryIncorrect(model.LevelProgress{"青": model.StatusIncorrect})
	assert.Equal(t, 1, n)
	assert.Equal(t, []model.VocabEntry{testEntries[1]}, s.Pool)

	for i := 0; i < 20; i++ {
		assert.Equal(t, "青", s.Next().Word)
	}

	status, err := s.Submit("노랑")
	require.NoError(t, err)
	assert.Equal(t, model.StatusIncorrect, status)
}

func TestSession_EmptyPoolResetsToVocabulary(t *testing.T) {
	s := NewSession("n5", testEntries, newTestSelector())
	s.Pool = nil

	got := s.Next()
	require.NotNil(t, got)
	assert.Len(t, s.Pool, len(testEntries))
}

func TestSession_EmptyVocabulary(t *testing.T) {
	s := NewSession("n1", nil, nil)
	assert.Nil(t, s.Next())
	_, err := s.Submit("anything")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
