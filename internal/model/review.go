// internal/model/review.go
package model

// ReviewFilter は復習リストの絞り込み条件
type ReviewFilter string

const (
	ReviewAll       ReviewFilter = "all"
	ReviewCorrect   ReviewFilter = "correct"
	ReviewIncorrect ReviewFilter = "incorrect"
)

// ParseReviewFilter はクエリ文字列を ReviewFilter に変換します。空文字は all。
func ParseReviewFilter(s string) (ReviewFilter, error) {
	switch ReviewFilter(s) {
	case "", ReviewAll:
		return ReviewAll, nil
	case ReviewCorrect:
		return ReviewCorrect, nil
	case ReviewIncorrect:
		return ReviewIncorrect, nil
	}
	return "", ErrInvalidInput
}

// ReviewItem は復習リストの1行
type ReviewItem struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
	Status  Status `json:"status"`
}
