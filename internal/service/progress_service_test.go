// internal/service/progress_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository/mocks"
)

func Test_progressService_GetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系", func(t *testing.T) {
		progRepo := mocks.NewProgressRepository(t)
		want := model.Progress{"n5": {"雨": model.StatusCorrect}}
		progRepo.On("Load", ctx).Return(want, nil).Once()

		got, err := NewProgressService(progRepo).GetProgress(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("異常系: 壊れたファイル", func(t *testing.T) {
		progRepo := mocks.NewProgressRepository(t)
		progRepo.On("Load", ctx).Return(nil, fmt.Errorf("x: %w", model.ErrMalformedResource)).Once()

		_, err := NewProgressService(progRepo).GetProgress(ctx)
		assert.ErrorIs(t, err, model.ErrMalformedResource)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "MALFORMED_DATA", appErr.Detail.Code)
	})
}

func Test_progressService_RecordProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *model.ProgressUpdateRequest
		setupMock func(p *mocks.ProgressRepository)
		want      *model.ProgressUpdateResponse
		wantErr   error
	}{
		{
			name: "正常系: 記録成功",
			req:  &model.ProgressUpdateRequest{Level: "n5", Word: "雨", Status: model.StatusIncorrect},
			setupMock: func(p *mocks.ProgressRepository) {
				p.On("Update", ctx, "n5", "雨", model.StatusIncorrect).Return(nil).Once()
			},
			want: &model.ProgressUpdateResponse{Status: "success", UpdatedWord: "雨", NewStatus: model.StatusIncorrect},
		},
		{
			name:      "異常系: 不正なステータス",
			req:       &model.ProgressUpdateRequest{Level: "n5", Word: "雨", Status: "skipped"},
			setupMock: func(p *mocks.ProgressRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 保存失敗",
			req:  &model.ProgressUpdateRequest{Level: "n5", Word: "雨", Status: model.StatusCorrect},
			setupMock: func(p *mocks.ProgressRepository) {
				p.On("Update", ctx, "n5", "雨", model.StatusCorrect).Return(errors.New("permission denied")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progRepo := mocks.NewProgressRepository(t)
			tt.setupMock(progRepo)

			got, err := NewProgressService(progRepo).RecordProgress(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
