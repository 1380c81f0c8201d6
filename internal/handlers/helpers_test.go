// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// testLogger はテスト中のログを捨てます。
var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")
	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch: %s", string(respBodyBytes))

	return respBodyBytes
}

// serveRequest はサーバーを立てずにルーターへ直接リクエストを流します。
func serveRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// verifyErrorResponse はエラーレスポンスのコードとフィールドを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode, expectedField string) model.ErrorDetail {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "error body is not an APIErrorResponse: %s", string(bodyBytes))
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	if expectedCode != "" {
		assert.Equal(t, expectedCode, errResp.Error.Code)
	}
	if expectedField != "" {
		assert.Equal(t, expectedField, errResp.Error.Field)
	}
	return errResp.Error
}
