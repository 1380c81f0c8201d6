// internal/quiz/grader.go
package quiz

import (
	"strings"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// IsBlank は前後の空白を除いた入力が空かどうかを返します。
// 空の入力は回答として扱わず、呼び出し側で再入力を促すこと。
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

// Grade は入力と正解の意味を双方向の部分一致で比較します。
// 大文字小文字を区別し、正規化もしません。部分的な回答も、正解を含む長い回答も正解になります。
// 副作用はなく、結果の保存は呼び出し側の責務です。
func Grade(input, expectedMeaning string) model.Status {
	in := strings.TrimSpace(input)
	if strings.Contains(expectedMeaning, in) || strings.Contains(in, expectedMeaning) {
		return model.StatusCorrect
	}
	return model.StatusIncorrect
}
