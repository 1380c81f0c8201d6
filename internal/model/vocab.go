// internal/model/vocab.go
package model

// VocabEntry は単語帳の1項目 (単語・読み・意味) を表します。
// word がレベル内の自然キーですが、重複はチェックしません。
type VocabEntry struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
}

// QuizMode は出題モード
type QuizMode string

const (
	ModeLearning QuizMode = "learning"
	ModeRetry    QuizMode = "retry"
)

// WordResponse は出題APIのレスポンスDTO
// 再挑戦モードで対象がない場合は Word が nil になり Message が入ります。
type WordResponse struct {
	Word    *VocabEntry `json:"word"`
	Mode    QuizMode    `json:"mode,omitempty"`
	Message string      `json:"message,omitempty"`
}

// LevelsResponse はレベル一覧のレスポンスDTO
type LevelsResponse struct {
	Levels []string `json:"levels"`
}

// SubmitAnswerRequest は回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	Level  string `json:"level" validate:"required"`
	Word   string `json:"word" validate:"required"`
	Answer string `json:"answer"` // 空白のみはサービス側で弾く
}

// AnswerResult は採点結果
type AnswerResult struct {
	Word            string `json:"word"`
	Status          Status `json:"status"`
	ExpectedMeaning string `json:"expected_meaning"`
}
