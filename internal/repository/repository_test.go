package repository

import (
	"errors"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPgError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Second active trip",
			err:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: activeTripConstraint},
			expected: service.ErrActiveTrip,
		},
		{
			name:     "Wrapped second active trip",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: activeTripConstraint}),
			expected: service.ErrActiveTrip,
		},
		{
			name:     "Report vanished",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: reportFKConstraint},
			expected: service.ErrReportNotFound,
		},
		{
			name:     "Profile vanished",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: userFKConstraint},
			expected: service.ErrProfileNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapPgError(tc.err))
		})
	}
}

func TestMapPgError_PassThrough(t *testing.T) {
	other := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey"}
	plain := errors.New("connection refused")

	assert.Same(t, other, mapPgError(other))
	assert.Same(t, plain, mapPgError(plain))
}

func TestBuildReportList(t *testing.T) {
	t.Run("All reports", func(t *testing.T) {
		sql, args, err := buildReportList(models.ReportFilter{})
		require.NoError(t, err)

		assert.Contains(t, sql, "FROM reports")
		assert.NotContains(t, sql, "WHERE")
		assert.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
		assert.Empty(t, args)
	})

	t.Run("Owner filter", func(t *testing.T) {
		sql, args, err := buildReportList(models.ReportFilter{UserID: "uid-1"})
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE user_id = $1")
		assert.Equal(t, []any{"uid-1"}, args)
	})
}

func TestBuildReportUpdate(t *testing.T) {
	t.Run("Only given fields are set", func(t *testing.T) {
		status := models.ReportStatusCompleted
		sql, args, err := buildReportUpdate(5, "uid-1", models.ReportUpdate{Status: &status})
		require.NoError(t, err)

		assert.Contains(t, sql, "UPDATE reports SET status = $1, updated_at = NOW()")
		assert.NotContains(t, sql, "address =")
		assert.NotContains(t, sql, "description =")
		assert.Contains(t, sql, "WHERE id = $2 AND user_id = $3")
		assert.Contains(t, sql, "RETURNING id, user_id, name")
		assert.Equal(t, []any{"completed", int64(5), "uid-1"}, args)
	})

	t.Run("All fields", func(t *testing.T) {
		address, description := "新地址", "更新描述"
		status := models.ReportStatusProcessing
		sql, args, err := buildReportUpdate(7, "uid-2", models.ReportUpdate{
			Address:     &address,
			Status:      &status,
			Description: &description,
		})
		require.NoError(t, err)

		assert.Contains(t, sql, "SET address = $1, status = $2, description = $3, updated_at = NOW()")
		assert.Equal(t, []any{"新地址", "processing", "更新描述", int64(7), "uid-2"}, args)
	})
}

func TestBuildOnGoingSelect(t *testing.T) {
	t.Run("With volunteer only", func(t *testing.T) {
		sql, _, err := buildOnGoingSelect(false).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, `u.name AS "user.name"`)
		assert.Contains(t, sql, "JOIN users u ON u.id = o.user_id")
		assert.NotContains(t, sql, "JOIN reports")
		assert.Contains(t, sql, "ORDER BY o.created_at DESC, o.id DESC")
	})

	t.Run("With report", func(t *testing.T) {
		sql, _, err := buildOnGoingSelect(true).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "JOIN reports r ON r.id = o.report_id")
		assert.Contains(t, sql, `r.address AS "report.address"`)
	})

	t.Run("Batch of reports", func(t *testing.T) {
		sql, args, err := buildOnGoingSelect(false).Where(sq.Eq{"o.report_id": []int64{1, 2}}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "o.report_id IN ($1,$2)")
		assert.Equal(t, []any{int64(1), int64(2)}, args)
	})
}
