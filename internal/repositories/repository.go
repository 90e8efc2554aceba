package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	apperrors "project-dashboard/pkg/errors"
)

// psql - билдер squirrel с плейсхолдерами $N для Postgres.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wrapErr: pgx.ErrNoRows -> apperrors.ErrNotFound, остальное оборачиваем с контекстом.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// execAffecting выполняет UPDATE/DELETE; ноль затронутых строк -> ErrNotFound.
func execAffecting(ctx context.Context, q querier, op, query string, args []interface{}) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return wrapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
