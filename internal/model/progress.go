// internal/model/progress.go
package model

// Status は単語ごとの採点結果です。エントリがなければ未挑戦。
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"

	// StatusNotAttempted は復習リスト表示専用で、保存はされません。
	StatusNotAttempted Status = "Not Attempted"
)

// LevelProgress は word -> status
type LevelProgress map[string]Status

// Progress は level -> word -> status の全体マップ。
// 読み込み・保存は常に全体単位で行います。
type Progress map[string]LevelProgress

// Level は指定レベルの進捗を返します。存在しなければ空のマップ。
func (p Progress) Level(level string) LevelProgress {
	if lp, ok := p[level]; ok && lp != nil {
		return lp
	}
	return LevelProgress{}
}

// Set は level/word の状態を上書きします。履歴は残しません。
func (p Progress) Set(level, word string, status Status) {
	lp, ok := p[level]
	if !ok || lp == nil {
		lp = make(LevelProgress)
		p[level] = lp
	}
	lp[word] = status
}

// ProgressUpdateRequest は進捗更新リクエストのDTO
type ProgressUpdateRequest struct {
	Level  string `json:"level" validate:"required"`
	Word   string `json:"word" validate:"required"`
	Status Status `json:"status" validate:"required,oneof=correct incorrect"`
}

// ProgressUpdateResponse は進捗更新のレスポンスDTO
type ProgressUpdateResponse struct {
	Status      string `json:"status"`
	UpdatedWord string `json:"updated_word"`
	NewStatus   Status `json:"new_status"`
}
