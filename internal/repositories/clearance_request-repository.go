package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"project-dashboard/internal/entities"
)

const clearanceRequestTable = "clearance_requests"

var clearanceRequestColumns = []string{
	"id", "project_name", "client_name", "client_national_id", "client_phone", "unit_number",
	"status", "assigned_to", "import_batch_id", "created_at", "updated_at",
}

type ClearanceRequestRepositoryInterface interface {
	List(ctx context.Context, filter RequestFilter) ([]entities.ClearanceRequest, error)
	FindByID(ctx context.Context, id int64) (*entities.ClearanceRequest, error)
	Create(ctx context.Context, c entities.ClearanceRequest) (int64, error)
	Update(ctx context.Context, c entities.ClearanceRequest) error
	Delete(ctx context.Context, id int64) error
	// CreateBatch вставляет пачку внутри переданной транзакции.
	CreateBatch(ctx context.Context, tx pgx.Tx, batchID uuid.UUID, items []entities.ClearanceRequest) (int, error)
}

type ClearanceRequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewClearanceRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) ClearanceRequestRepositoryInterface {
	return &ClearanceRequestRepository{storage: storage, logger: logger}
}

func scanClearanceRequest(row pgx.Row) (entities.ClearanceRequest, error) {
	var c entities.ClearanceRequest
	err := row.Scan(
		&c.ID, &c.ProjectName, &c.ClientName, &c.ClientNationalID, &c.ClientPhone, &c.UnitNumber,
		&c.Status, &c.AssignedTo, &c.ImportBatchID, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *ClearanceRequestRepository) List(ctx context.Context, filter RequestFilter) ([]entities.ClearanceRequest, error) {
	b := psql.Select(clearanceRequestColumns...).From(clearanceRequestTable).OrderBy("created_at DESC", "id DESC")
	if filter.ProjectName != "" {
		b = b.Where(sq.Eq{"project_name": filter.ProjectName})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"client_name": like},
			sq.ILike{"client_national_id": like},
			sq.ILike{"project_name": like},
		})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, wrapErr("clearance list: build", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("clearance list", err)
	}
	defer rows.Close()

	out := make([]entities.ClearanceRequest, 0)
	for rows.Next() {
		c, err := scanClearanceRequest(rows)
		if err != nil {
			return nil, wrapErr("clearance list: scan", err)
		}
		out = append(out, c)
	}
	return out, wrapErr("clearance list: rows", rows.Err())
}

func (r *ClearanceRequestRepository) FindByID(ctx context.Context, id int64) (*entities.ClearanceRequest, error) {
	query, args, err := psql.Select(clearanceRequestColumns...).From(clearanceRequestTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, wrapErr("clearance find: build", err)
	}
	c, err := scanClearanceRequest(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("clearance find", err)
	}
	return &c, nil
}

func clearanceValues(c entities.ClearanceRequest) map[string]interface{} {
	return map[string]interface{}{
		"project_name":       c.ProjectName,
		"client_name":        c.ClientName,
		"client_national_id": c.ClientNationalID,
		"client_phone":       c.ClientPhone,
		"unit_number":        c.UnitNumber,
		"status":             c.Status,
		"assigned_to":        c.AssignedTo,
	}
}

func (r *ClearanceRequestRepository) Create(ctx context.Context, c entities.ClearanceRequest) (int64, error) {
	return insertClearance(ctx, r.storage, c)
}

func insertClearance(ctx context.Context, q querier, c entities.ClearanceRequest) (int64, error) {
	values := clearanceValues(c)
	if c.ImportBatchID != nil {
		values["import_batch_id"] = *c.ImportBatchID
	}
	query, args, err := psql.Insert(clearanceRequestTable).SetMap(values).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, wrapErr("clearance create: build", err)
	}
	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapErr("clearance create", err)
	}
	return id, nil
}

func (r *ClearanceRequestRepository) Update(ctx context.Context, c entities.ClearanceRequest) error {
	query, args, err := psql.Update(clearanceRequestTable).
		SetMap(clearanceValues(c)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return wrapErr("clearance update: build", err)
	}
	return execAffecting(ctx, r.storage, "clearance update", query, args)
}

func (r *ClearanceRequestRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(clearanceRequestTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return wrapErr("clearance delete: build", err)
	}
	return execAffecting(ctx, r.storage, "clearance delete", query, args)
}

func (r *ClearanceRequestRepository) CreateBatch(ctx context.Context, tx pgx.Tx, batchID uuid.UUID, items []entities.ClearanceRequest) (int, error) {
	for i := range items {
		items[i].ImportBatchID = &batchID
		if _, err := insertClearance(ctx, tx, items[i]); err != nil {
			return i, err
		}
	}
	r.logger.Info("Пакет заявок на переоформление собственности вставлен", zap.String("batch", batchID.String()), zap.Int("count", len(items)))
	return len(items), nil
}
