// internal/quiz/selector.go
package quiz

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// Selector は単語リストから出題する単語をランダムに1つ選びます。
// 呼び出し間で状態は持たず、同じ単語が続けて選ばれることもあります。
type Selector struct {
	rng *rand.Rand
}

// NewSelector は乱数源を指定して Selector を作成します。nil ならグローバルの乱数を使います。
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

func (s *Selector) intN(n int) int {
	if s == nil || s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Select は出題する単語を返します。候補がなければ nil。
// restrictToIncorrect が true の場合は progress で "incorrect" の単語だけを対象にし、
// 該当がなくても全体にはフォールバックしません。
func (s *Selector) Select(entries []model.VocabEntry, restrictToIncorrect bool, progress model.LevelProgress) *model.VocabEntry {
	pool := entries
	if restrictToIncorrect {
		pool = IncorrectEntries(entries, progress)
	}
	if len(pool) == 0 {
		return nil
	}
	picked := pool[s.intN(len(pool))]
	return &picked
}

// IncorrectEntries は progress で "incorrect" になっている単語だけを元の順序で返します。
func IncorrectEntries(entries []model.VocabEntry, progress model.LevelProgress) []model.VocabEntry {
	return lo.Filter(entries, func(e model.VocabEntry, _ int) bool {
		return progress[e.Word] == model.StatusIncorrect
	})
}
