package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/help_hualien/internal/service"
)

// Имена ограничений из migrations/000001_init.up.sql
const (
	activeTripConstraint = "ongoing_one_active_per_user"
	reportFKConstraint   = "ongoing_report_id_fkey"
	userFKConstraint     = "ongoing_user_id_fkey"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapPgError переводит нарушения ограничений postgres в ошибки бизнес-логики
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == activeTripConstraint:
		return service.ErrActiveTrip
	case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == reportFKConstraint:
		return service.ErrReportNotFound
	case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == userFKConstraint:
		return service.ErrProfileNotFound
	}
	return err
}
