// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドは無視します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("empty body: %w", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body: %w", model.ErrInvalidInput)
		}
		return fmt.Errorf("decode body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate はデコードとバリデーションをまとめて行い、
// 失敗した場合はクライアントに返せる AppError を返します。
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", err)
	}
	if err := Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// 最初のエラーを代表として返す
			firstErr := validationErrors[0]
			return model.NewAppError("VALIDATION_ERROR", firstErr.Translate(Trans), firstErr.Field(), model.ErrInvalidInput)
		}
		return err
	}
	return nil
}

// QueryBool はクエリパラメータを bool として読みます。未指定なら def。
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, model.NewAppError("INVALID_QUERY_PARAM", name+"はtrueかfalseを指定してください。", name, model.ErrInvalidInput)
	}
	return v, nil
}
