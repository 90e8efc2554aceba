package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"project-dashboard/internal/entities"
)

const technicalRequestTable = "technical_requests"

var technicalRequestColumns = []string{
	"id", "project_id", "project_name", "service_type", "status", "progress", "assigned_to", "created_at", "updated_at",
}

// RequestFilter - необязательные фильтры списков заявок.
type RequestFilter struct {
	ProjectID   *int64
	ProjectName string
	Search      string
	Limit       uint64
}

type TechnicalRequestRepositoryInterface interface {
	List(ctx context.Context, filter RequestFilter) ([]entities.TechnicalRequest, error)
	FindByID(ctx context.Context, id int64) (*entities.TechnicalRequest, error)
	Create(ctx context.Context, r entities.TechnicalRequest) (int64, error)
	Update(ctx context.Context, r entities.TechnicalRequest) error
	Delete(ctx context.Context, id int64) error
}

type TechnicalRequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTechnicalRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) TechnicalRequestRepositoryInterface {
	return &TechnicalRequestRepository{storage: storage, logger: logger}
}

func scanTechnicalRequest(row pgx.Row) (entities.TechnicalRequest, error) {
	var t entities.TechnicalRequest
	err := row.Scan(&t.ID, &t.ProjectID, &t.ProjectName, &t.ServiceType, &t.Status, &t.Progress, &t.AssignedTo, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TechnicalRequestRepository) List(ctx context.Context, filter RequestFilter) ([]entities.TechnicalRequest, error) {
	b := psql.Select(technicalRequestColumns...).From(technicalRequestTable).OrderBy("created_at DESC", "id DESC")
	// проект может быть указан и id, и только именем
	switch {
	case filter.ProjectID != nil && filter.ProjectName != "":
		b = b.Where(sq.Or{sq.Eq{"project_id": *filter.ProjectID}, sq.Eq{"project_name": filter.ProjectName}})
	case filter.ProjectID != nil:
		b = b.Where(sq.Eq{"project_id": *filter.ProjectID})
	case filter.ProjectName != "":
		b = b.Where(sq.Eq{"project_name": filter.ProjectName})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b = b.Where(sq.Or{sq.ILike{"service_type": like}, sq.ILike{"project_name": like}, sq.ILike{"status": like}})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, wrapErr("technical request list: build", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("technical request list", err)
	}
	defer rows.Close()

	out := make([]entities.TechnicalRequest, 0)
	for rows.Next() {
		t, err := scanTechnicalRequest(rows)
		if err != nil {
			return nil, wrapErr("technical request list: scan", err)
		}
		out = append(out, t)
	}
	return out, wrapErr("technical request list: rows", rows.Err())
}

func (r *TechnicalRequestRepository) FindByID(ctx context.Context, id int64) (*entities.TechnicalRequest, error) {
	query, args, err := psql.Select(technicalRequestColumns...).From(technicalRequestTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, wrapErr("technical request find: build", err)
	}
	t, err := scanTechnicalRequest(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("technical request find", err)
	}
	return &t, nil
}

func technicalRequestValues(t entities.TechnicalRequest) map[string]interface{} {
	return map[string]interface{}{
		"project_id":   t.ProjectID,
		"project_name": t.ProjectName,
		"service_type": t.ServiceType,
		"status":       t.Status,
		"progress":     t.Progress,
		"assigned_to":  t.AssignedTo,
	}
}

func (r *TechnicalRequestRepository) Create(ctx context.Context, t entities.TechnicalRequest) (int64, error) {
	query, args, err := psql.Insert(technicalRequestTable).SetMap(technicalRequestValues(t)).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, wrapErr("technical request create: build", err)
	}
	var id int64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapErr("technical request create", err)
	}
	return id, nil
}

// Update всегда проставляет updated_at: запись должна подняться в ленте активности.
func (r *TechnicalRequestRepository) Update(ctx context.Context, t entities.TechnicalRequest) error {
	query, args, err := psql.Update(technicalRequestTable).
		SetMap(technicalRequestValues(t)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return wrapErr("technical request update: build", err)
	}
	return execAffecting(ctx, r.storage, "technical request update", query, args)
}

func (r *TechnicalRequestRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(technicalRequestTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return wrapErr("technical request delete: build", err)
	}
	return execAffecting(ctx, r.storage, "technical request delete", query, args)
}
