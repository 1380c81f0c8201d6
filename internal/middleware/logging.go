// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBodyBytes はデバッグログに残すボディの上限です。
const maxLoggedBodyBytes = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization":  true,
	"cookie":         true,
	"set-cookie":     true,
	"x-api-key":      true,
	"x-goog-api-key": true,
}

// responseLogger は http.ResponseWriter をラップし、ステータスコードと書き込みバイト数を記録します。
// ボディはJSONのときだけ先頭部分を保持します (音声データはログに出さない)。
type responseLogger struct {
	http.ResponseWriter
	statusCode  int
	bytesOut    int
	captureBody bool
	body        *bytes.Buffer
}

func newResponseLogger(w http.ResponseWriter, captureBody bool) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		captureBody:    captureBody,
		body:           new(bytes.Buffer),
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	if rl.captureBody && isJSON(rl.Header().Get("Content-Type")) && rl.body.Len() < maxLoggedBodyBytes {
		rl.body.Write(b[:min(len(b), maxLoggedBodyBytes-rl.body.Len())])
	}
	n, err := rl.ResponseWriter.Write(b)
	rl.bytesOut += n
	return n, err
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// chi の RequestID ミドルウェアより後ろに置いてください。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
			}

			rl := newResponseLogger(w, debug)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			logLevel := slog.LevelInfo
			if rl.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rl.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", rl.statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.bytesOut,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"query", r.URL.RawQuery,
					"headers", formatHeaders(r.Header),
					"body", truncate(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", rl.statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", rl.body.String(),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します。CLI からも使います。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングします。
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "application/json")
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBodyBytes {
		return string(b[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(b)
}
