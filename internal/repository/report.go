package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service"
)

var reportColumns = []string{
	"id",
	"user_id",
	"name",
	"phone",
	"address",
	"description",
	"latitude",
	"longitude",
	"status",
	"created_at",
	"updated_at",
}

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create сохраняет новую заявку и заполняет id и временные метки
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, name, phone, address, description, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.UserID,
		report.Name,
		report.Phone,
		report.Address,
		report.Description,
		report.Latitude,
		report.Longitude,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по id
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	sql, args, err := psql.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	report := &models.Report{}
	if err := pgxscan.Get(ctx, r.db, report, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, service.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List возвращает заявки, новые первыми
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	sql, args, err := buildReportList(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build report list query: %w", err)
	}

	reports := make([]*models.Report, 0)
	if err := pgxscan.Select(ctx, r.db, &reports, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// Update применяет частичное обновление в одном запросе. Чужая и несуществующая
// заявки неразличимы: в обоих случаях строка не найдена.
func (r *ReportRepository) Update(ctx context.Context, id int64, ownerID string, update models.ReportUpdate) (*models.Report, error) {
	sql, args, err := buildReportUpdate(id, ownerID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to build report update: %w", err)
	}

	report := &models.Report{}
	if err := pgxscan.Get(ctx, r.db, report, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, service.ErrOwnedReportNotFound
		}
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

func buildReportList(filter models.ReportFilter) (string, []any, error) {
	query := psql.Select(reportColumns...).
		From("reports").
		OrderBy("created_at DESC", "id DESC")
	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	return query.ToSql()
}

func buildReportUpdate(id int64, ownerID string, update models.ReportUpdate) (string, []any, error) {
	query := psql.Update("reports")
	if update.Address != nil {
		query = query.Set("address", *update.Address)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
}

