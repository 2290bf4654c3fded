package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service"
)

// onGoingRow - строка выборки поездки вместе с профилем волонтера и, при необходимости, заявкой
type onGoingRow struct {
	models.OnGoing
	User   models.User   `db:"user"`
	Report models.Report `db:"report"`
}

type OnGoingRepository struct {
	db *pgxpool.Pool
}

func NewOnGoingRepository(db *pgxpool.Pool) service.OnGoingRepository {
	return &OnGoingRepository{db: db}
}

// Create вставляет поездку. Второй активной поездки не допускает частичный
// уникальный индекс, поэтому проверка и вставка атомарны.
func (r *OnGoingRepository) Create(ctx context.Context, onGoing *models.OnGoing) error {
	query := `
		INSERT INTO ongoing (report_id, user_id, status, minutes)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		onGoing.ReportID,
		onGoing.UserID,
		onGoing.Status,
		onGoing.Minutes,
	).Scan(&onGoing.ID, &onGoing.CreatedAt, &onGoing.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ongoing: %w", mapPgError(err))
	}
	return nil
}

// UpdateStatus меняет статус и, если задано, minutes поездки владельца
func (r *OnGoingRepository) UpdateStatus(ctx context.Context, id int64, userID string, status models.OnGoingStatus, minutes *int) (*models.OnGoing, error) {
	query := `
		UPDATE ongoing SET
			status = $1,
			minutes = COALESCE($2, minutes),
			updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING id, report_id, user_id, status, minutes, created_at, updated_at;
	`
	onGoing := &models.OnGoing{}
	err := r.db.QueryRow(ctx, query, status, minutes, id, userID).Scan(
		&onGoing.ID,
		&onGoing.ReportID,
		&onGoing.UserID,
		&onGoing.Status,
		&onGoing.Minutes,
		&onGoing.CreatedAt,
		&onGoing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOnGoingNotFound
		}
		return nil, fmt.Errorf("failed to update ongoing status: %w", mapPgError(err))
	}
	return onGoing, nil
}

// Delete удаляет поездку владельца
func (r *OnGoingRepository) Delete(ctx context.Context, id int64, userID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ongoing WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete ongoing: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrOnGoingNotFound
	}
	return nil
}

// ListByReport возвращает поездки к заявке вместе с профилями волонтеров
func (r *OnGoingRepository) ListByReport(ctx context.Context, reportID int64) ([]*models.OnGoingWithRelations, error) {
	return r.list(ctx, buildOnGoingSelect(false).Where(sq.Eq{"o.report_id": reportID}))
}

// ListByReports загружает поездки для набора заявок одним запросом
func (r *OnGoingRepository) ListByReports(ctx context.Context, reportIDs []int64) ([]*models.OnGoingWithRelations, error) {
	if len(reportIDs) == 0 {
		return []*models.OnGoingWithRelations{}, nil
	}
	return r.list(ctx, buildOnGoingSelect(false).Where(sq.Eq{"o.report_id": reportIDs}))
}

// ListByUser возвращает поездки волонтера вместе с заявками
func (r *OnGoingRepository) ListByUser(ctx context.Context, userID string) ([]*models.OnGoingWithRelations, error) {
	return r.list(ctx, buildOnGoingSelect(true).Where(sq.Eq{"o.user_id": userID}))
}

func (r *OnGoingRepository) list(ctx context.Context, query sq.SelectBuilder) ([]*models.OnGoingWithRelations, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build ongoing query: %w", err)
	}

	var rows []*onGoingRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to list ongoing: %w", err)
	}

	result := make([]*models.OnGoingWithRelations, len(rows))
	for i, row := range rows {
		user := row.User
		rel := &models.OnGoingWithRelations{OnGoing: row.OnGoing, User: &user}
		if row.Report.ID != 0 {
			report := row.Report
			rel.Report = &report
		}
		result[i] = rel
	}
	return result, nil
}

// buildOnGoingSelect собирает выборку поездок с профилем волонтера; withReport добавляет заявку
func buildOnGoingSelect(withReport bool) sq.SelectBuilder {
	columns := []string{
		"o.id", "o.report_id", "o.user_id", "o.status", "o.minutes", "o.created_at", "o.updated_at",
		`u.id AS "user.id"`,
		`u.name AS "user.name"`,
		`u.phone AS "user.phone"`,
		`u.created_at AS "user.created_at"`,
		`u.updated_at AS "user.updated_at"`,
	}
	query := psql.Select().From("ongoing o").Join("users u ON u.id = o.user_id")
	if withReport {
		for _, c := range reportColumns {
			columns = append(columns, fmt.Sprintf(`r.%s AS "report.%s"`, c, c))
		}
		query = query.Join("reports r ON r.id = o.report_id")
	}
	return query.Columns(columns...).OrderBy("o.created_at DESC", "o.id DESC")
}
