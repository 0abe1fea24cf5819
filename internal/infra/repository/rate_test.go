//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"interpreting-payments/internal/infra"
	"interpreting-payments/internal/infra/repository"
	"interpreting-payments/internal/pkg/config"
	"interpreting-payments/internal/pkg/logger"
	"interpreting-payments/tests/common/builder"
	repositorymock "interpreting-payments/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindActive Tests
// =============================================================================

func TestRateRepository_FindActive_QueryError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := repositorymock.NewMockDBTX(ctrl)
	repo := repository.NewRateRepository(mockDB, logger.New(config.NewTestConfig().Log))

	mockDB.EXPECT().Query(ctx, gomock.Any()).Return(nil, errors.New("database connection error"))

	rates, err := repo.FindActive(ctx)

	require.Error(t, err)
	assert.Nil(t, rates)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "expected kind [%v] but got [%T] (%v)", infra.KindDBFailure, err, err)
}

// =============================================================================
// InsertVersion Tests
// =============================================================================

func TestRateRepository_InsertVersion(t *testing.T) {
	ctx := context.Background()
	rows := builder.NewRateCardBuilder().With(func(b *builder.RateCardBuilder) {
		b.InterpreterSpecial = "52.00"
	}).BuildRows()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: every row is copied with its version",
			setupMock: func(mock *repositorymock.MockDBTX) {
				mock.EXPECT().CopyFrom(ctx, pgx.Identifier{"rates"}, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
						var n int64
						for src.Next() {
							values, err := src.Values()
							if err != nil {
								return n, err
							}
							if len(values) != len(columns) {
								return n, errors.New("column count mismatch")
							}
							if values[0] != int32(3) {
								return n, errors.New("unexpected version")
							}
							n++
						}
						if n != int64(len(rows)) {
							return n, errors.New("unexpected row count")
						}
						return n, src.Err()
					})
			},
			expectedError: false,
		},
		{
			name: "error: copy fails",
			setupMock: func(mock *repositorymock.MockDBTX) {
				mock.EXPECT().CopyFrom(ctx, pgx.Identifier{"rates"}, gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("duplicate key value violates unique constraint"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := repositorymock.NewMockDBTX(ctrl)
			repo := repository.NewRateRepository(mockDB, logger.New(config.NewTestConfig().Log))

			tc.setupMock(mockDB)

			actualError := repo.InsertVersion(ctx, 3, rows)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
