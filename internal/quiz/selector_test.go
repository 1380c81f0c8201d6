// internal/quiz/selector_test.go
package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

var testEntries = []model.VocabEntry{
	{Word: "会う", Reading: "あう", Meaning: "만나다"},
	{Word: "青", Reading: "あお", Meaning: "파랑"},
	{Word: "赤", Reading: "あか", Meaning: "빨강"},
	{Word: "雨", Reading: "あめ", Meaning: "비"},
}

func newTestSelector() *Selector {
	return NewSelector(rand.New(rand.NewPCG(1, 2)))
}

func TestSelector_Select(t *testing.T) {
	s := newTestSelector()

	t.Run("空の単語リストは nil", func(t *testing.T) {
		assert.Nil(t, s.Select(nil, false, nil))
		assert.Nil(t, s.Select([]model.VocabEntry{}, true, model.LevelProgress{"会う": model.StatusIncorrect}))
	})

	t.Run("通常モードは必ずリストの要素を返す", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			got := s.Select(testEntries, false, nil)
			require.NotNil(t, got)
			assert.Contains(t, testEntries, *got)
		}
	})

	t.Run("通常モードは全ての単語が選ばれうる", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			seen[s.Select(testEntries, false, nil).Word] = true
		}
		assert.Len(t, seen, len(testEntries))
	})

	t.Run("再挑戦モードで incorrect がなければ nil", func(t *testing.T) {
		progress := model.LevelProgress{"会う": model.StatusCorrect, "青": model.StatusCorrect}
		assert.Nil(t, s.Select(testEntries, true, progress))
		assert.Nil(t, s.Select(testEntries, true, nil))
	})

	t.Run("再挑戦モードは incorrect の単語だけを返す", func(t *testing.T) {
		progress := model.LevelProgress{
			"会う":    model.StatusIncorrect,
			"青":     model.StatusCorrect,
			"雨":     model.StatusIncorrect,
			"消えた単語": model.StatusIncorrect, // 単語帳にない進捗は対象外
		}
		for i := 0; i < 100; i++ {
			got := s.Select(testEntries, true, progress)
			require.NotNil(t, got)
			assert.Contains(t, []string{"会う", "雨"}, got.Word)
		}
	})

	t.Run("返り値を変更しても元のリストに影響しない", func(t *testing.T) {
		entries := []model.VocabEntry{{Word: "雨", Reading: "あめ", Meaning: "비"}}
		got := s.Select(entries, false, nil)
		got.Meaning = "changed"
		assert.Equal(t, "비", entries[0].Meaning)
	})
}

func TestSelector_NilRandomSource(t *testing.T) {
	var s *Selector
	got := s.Select(testEntries, false, nil)
	require.NotNil(t, got)
	assert.Contains(t, testEntries, *got)
}

func TestIncorrectEntries(t *testing.T) {
	progress := model.LevelProgress{"赤": model.StatusIncorrect, "会う": model.StatusIncorrect}
	got := IncorrectEntries(testEntries, progress)
	// 単語帳の順序を保つ
	assert.Equal(t, []model.VocabEntry{testEntries[0], testEntries[2]}, got)
}
