// internal/service/errors.go
package service

import (
	"errors"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// storeError はリポジトリのエラーをクライアント向けの AppError に変換します。
// 元のエラーは Unwrap で辿れるので、ステータスコードの判定は webutil に任せます。
func storeError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrMalformedResource) {
		return model.NewAppError("MALFORMED_DATA", "保存されているデータの形式が正しくありません。", "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", errors.Join(model.ErrInternalServer, err))
}
