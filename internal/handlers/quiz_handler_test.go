// internal/handlers/quiz_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/handlers"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service/mocks"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/tts"
)

type mockedApp struct {
	router   http.Handler
	quiz     *mocks.QuizService
	progress *mocks.ProgressService
}

func newMockedApp(t *testing.T) *mockedApp {
	t.Helper()
	quizSvc := mocks.NewQuizService(t)
	progressSvc := mocks.NewProgressService(t)

	router := handlers.NewRouter(
		handlers.RouterOptions{Logger: testLogger, CORS: cors.Options{AllowedOrigins: []string{"*"}}},
		handlers.NewQuizHandler(quizSvc, testLogger),
		handlers.NewProgressHandler(progressSvc, testLogger),
		handlers.NewSpeechHandler(tts.NopSpeaker{}, nil, testLogger),
		handlers.NewRootHandler(progressSvc, "json", testLogger),
	)
	return &mockedApp{router: router, quiz: quizSvc, progress: progressSvc}
}

func TestQuizHandler_GetLevels(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(m *mocks.QuizService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "正常系: レベル一覧",
			setupMock: func(m *mocks.QuizService) {
				m.On("ListLevels", mock.Anything).Return([]string{"n4", "n5"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"levels":["n4","n5"]}`,
		},
		{
			name: "正常系: レベルなし",
			setupMock: func(m *mocks.QuizService) {
				m.On("ListLevels", mock.Anything).Return([]string{}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"levels":[]}`,
		},
		{
			name: "異常系: サービスエラー",
			setupMock: func(m *mocks.QuizService) {
				m.On("ListLevels", mock.Anything).Return(nil, errors.New("disk error")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":{"code":"INTERNAL_SERVER_ERROR","message":"サーバー内部でエラーが発生しました。"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newMockedApp(t)
			tc.setupMock(app.quiz)

			rr := serveRequest(t, app.router, http.MethodGet, "/api/v1/levels", nil)
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestQuizHandler_GetWord(t *testing.T) {
	word := &model.VocabEntry{Word: "雨", Reading: "あめ", Meaning: "비"}

	tests := []struct {
		name         string
		path         string
		setupMock    func(m *mocks.QuizService)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "正常系: 学習モード",
			path: "/api/v1/word/n5",
			setupMock: func(m *mocks.QuizService) {
				m.On("NextWord", mock.Anything, "n5", false).Return(&model.WordResponse{Word: word, Mode: model.ModeLearning}, nil).Once()
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"word":{"word":"雨","reading":"あめ","meaning":"비"},"mode":"learning"}`, string(body))
			},
		},
		{
			name: "正常系: 再挑戦対象なし",
			path: "/api/v1/word/n5?retry_incorrect=true",
			setupMock: func(m *mocks.QuizService) {
				m.On("NextWord", mock.Anything, "n5", true).
					Return(&model.WordResponse{Word: nil, Mode: model.ModeRetry, Message: "No incorrect words to retry!"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"word":null,"mode":"retry","message":"No incorrect words to retry!"}`, string(body))
			},
		},
		{
			name: "異常系: 単語帳が空のレベル",
			path: "/api/v1/word/n1",
			setupMock: func(m *mocks.QuizService) {
				m.On("NextWord", mock.Anything, "n1", false).
					Return(nil, model.NewAppError("NOT_FOUND", "No data found for level", "level", model.ErrNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				detail := verifyErrorResponse(t, body, "NOT_FOUND", "level")
				assert.Equal(t, "No data found for level", detail.Message)
			},
		},
		{
			name:         "異常系: retry_incorrect が bool でない",
			path:         "/api/v1/word/n5?retry_incorrect=maybe",
			setupMock:    func(m *mocks.QuizService) {},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				verifyErrorResponse(t, body, "INVALID_QUERY_PARAM", "retry_incorrect")
			},
		},
		{
			name: "異常系: 壊れたデータは500",
			path: "/api/v1/word/n5",
			setupMock: func(m *mocks.QuizService) {
				m.On("NextWord", mock.Anything, "n5", false).
					Return(nil, model.NewAppError("MALFORMED_DATA", "保存されているデータの形式が正しくありません。", "", fmt.Errorf("x: %w", model.ErrMalformedResource))).Once()
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				verifyErrorResponse(t, body, "MALFORMED_DATA", "")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newMockedApp(t)
			tc.setupMock(app.quiz)

			rr := serveRequest(t, app.router, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.expectedCode, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())
		})
	}
}

func TestQuizHandler_GetVocabulary(t *testing.T) {
	app := newMockedApp(t)
	app.quiz.On("GetVocabulary", mock.Anything, "n5").Return([]model.VocabEntry{{Word: "雨", Reading: "あめ", Meaning: "비"}}, nil).Once()
	app.quiz.On("GetVocabulary", mock.Anything, "zz").Return(nil, nil).Once()

	rr := serveRequest(t, app.router, http.MethodGet, "/api/v1/vocab/n5", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"word":"雨","reading":"あめ","meaning":"비"}]`, rr.Body.String())

	rr = serveRequest(t, app.router, http.MethodGet, "/api/v1/vocab/zz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestQuizHandler_GetReviewList(t *testing.T) {
	items := []model.ReviewItem{{Word: "雨", Reading: "あめ", Meaning: "비", Status: model.StatusNotAttempted}}

	tests := []struct {
		name         string
		path         string
		setupMock    func(m *mocks.QuizService)
		expectedCode int
	}{
		{
			name: "正常系: フィルタ省略は all",
			path: "/api/v1/review/n5",
			setupMock: func(m *mocks.QuizService) {
				m.On("ReviewList", mock.Anything, "n5", model.ReviewAll).Return(items, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "正常系: incorrect のみ",
			path: "/api/v1/review/n5?status=incorrect",
			setupMock: func(m *mocks.QuizService) {
				m.On("ReviewList", mock.Anything, "n5", model.ReviewIncorrect).Return([]model.ReviewItem{}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 不明なフィルタ",
			path:         "/api/v1/review/n5?status=skipped",
			setupMock:    func(m *mocks.QuizService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newMockedApp(t)
			tc.setupMock(app.quiz)

			rr := serveRequest(t, app.router, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.expectedCode, rr.Code)
			if rr.Code == http.StatusBadRequest {
				verifyErrorResponse(t, rr.Body.Bytes(), "INVALID_QUERY_PARAM", "status")
			}
		})
	}
}

func TestQuizHandler_ReloadVocabulary(t *testing.T) {
	app := newMockedApp(t)
	app.quiz.On("ReloadVocabulary", mock.Anything, "n5").Return(nil).Once()
	app.quiz.On("ReloadVocabulary", mock.Anything, "").Return(nil).Once()

	rr := serveRequest(t, app.router, http.MethodPost, "/api/v1/vocab/reload?level=n5", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serveRequest(t, app.router, http.MethodPost, "/api/v1/vocab/reload", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestQuizHandler_PostAnswer(t *testing.T) {
	validReq := model.SubmitAnswerRequest{Level: "n5", Word: "雨", Answer: "비"}

	tests := []struct {
		name          string
		body          interface{}
		setupMock     func(m *mocks.QuizService)
		expectedCode  int
		expectedError string
		expectedField string
	}{
		{
			name: "正常系: 採点結果を返す",
			body: validReq,
			setupMock: func(m *mocks.QuizService) {
				m.On("SubmitAnswer", mock.Anything, &validReq).
					Return(&model.AnswerResult{Word: "雨", Status: model.StatusCorrect, ExpectedMeaning: "비"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "異常系: word がない",
			body:          map[string]string{"level": "n5", "answer": "비"},
			setupMock:     func(m *mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "VALIDATION_ERROR",
			expectedField: "word",
		},
		{
			name:          "異常系: JSON でない",
			body:          "not json",
			setupMock:     func(m *mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 空白のみの回答",
			body: model.SubmitAnswerRequest{Level: "n5", Word: "雨", Answer: "  "},
			setupMock: func(m *mocks.QuizService) {
				m.On("SubmitAnswer", mock.Anything, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "回答を入力してください。", "answer", model.ErrInvalidInput)).Once()
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "VALIDATION_ERROR",
			expectedField: "answer",
		},
		{
			name: "異常系: 単語帳にない単語",
			body: model.SubmitAnswerRequest{Level: "n5", Word: "猫", Answer: "고양이"},
			setupMock: func(m *mocks.QuizService) {
				m.On("SubmitAnswer", mock.Anything, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "word", model.ErrNotFound)).Once()
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "NOT_FOUND",
			expectedField: "word",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newMockedApp(t)
			tc.setupMock(app.quiz)

			rr := serveRequest(t, app.router, http.MethodPost, "/api/v1/answer", tc.body)
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedError != "" {
				verifyErrorResponse(t, rr.Body.Bytes(), tc.expectedError, tc.expectedField)
				return
			}
			var result model.AnswerResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
			assert.Equal(t, model.StatusCorrect, result.Status)
			assert.Equal(t, "비", result.ExpectedMeaning)
		})
	}
}
