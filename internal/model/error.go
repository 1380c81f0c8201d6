// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternalServer    = errors.New("internal server error")
	ErrMalformedResource = errors.New("malformed resource") // 保存データがパースできない
	ErrUnavailable       = errors.New("service unavailable")
)

// AppError はクライアントに返すエラー情報と原因となったエラーをまとめたものです。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
