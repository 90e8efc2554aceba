package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"project-dashboard/internal/entities"
)

const projectTable = "projects"

var projectColumns = []string{
	"id", "name", "client", "title", "status", "progress",
	"units", "electricity_meters", "water_meters", "building_permits", "occupancy_certificates", "survey_decisions",
	"consultant_name", "consultant_phone", "contractor_name", "contractor_phone",
	"is_pinned", "created_at", "updated_at",
}

type ProjectRepositoryInterface interface {
	// List возвращает проекты: закреплённые первыми, затем новые.
	List(ctx context.Context) ([]entities.Project, error)
	FindByID(ctx context.Context, id int64) (*entities.Project, error)
	Create(ctx context.Context, p entities.Project) (int64, error)
	Update(ctx context.Context, p entities.Project) error
	Delete(ctx context.Context, id int64) error
	SetPinned(ctx context.Context, id int64, pinned bool) error
}

type ProjectRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProjectRepository(storage *pgxpool.Pool, logger *zap.Logger) ProjectRepositoryInterface {
	return &ProjectRepository{storage: storage, logger: logger}
}

func scanProject(row pgx.Row) (entities.Project, error) {
	var p entities.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Client, &p.Title, &p.Status, &p.Progress,
		&p.Units, &p.ElectricityMeters, &p.WaterMeters, &p.BuildingPermits, &p.OccupancyCertificates, &p.SurveyDecisions,
		&p.ConsultantName, &p.ConsultantPhone, &p.ContractorName, &p.ContractorPhone,
		&p.IsPinned, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProjectRepository) List(ctx context.Context) ([]entities.Project, error) {
	query, args, err := psql.Select(projectColumns...).
		From(projectTable).
		OrderBy("is_pinned DESC", "created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, wrapErr("project list: build", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("project list", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapErr("project list: scan", err)
		}
		projects = append(projects, p)
	}
	return projects, wrapErr("project list: rows", rows.Err())
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*entities.Project, error) {
	query, args, err := psql.Select(projectColumns...).From(projectTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, wrapErr("project find: build", err)
	}
	p, err := scanProject(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("project find", err)
	}
	return &p, nil
}

func projectValues(p entities.Project) map[string]interface{} {
	return map[string]interface{}{
		"name":                   p.Name,
		"client":                 p.Client,
		"title":                  p.Title,
		"status":                 p.Status,
		"progress":               p.Progress,
		"units":                  p.Units,
		"electricity_meters":     p.ElectricityMeters,
		"water_meters":           p.WaterMeters,
		"building_permits":       p.BuildingPermits,
		"occupancy_certificates": p.OccupancyCertificates,
		"survey_decisions":       p.SurveyDecisions,
		"consultant_name":        p.ConsultantName,
		"consultant_phone":       p.ConsultantPhone,
		"contractor_name":        p.ContractorName,
		"contractor_phone":       p.ContractorPhone,
		"is_pinned":              p.IsPinned,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (int64, error) {
	query, args, err := psql.Insert(projectTable).SetMap(projectValues(p)).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, wrapErr("project create: build", err)
	}
	var id int64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapErr("project create", err)
	}
	r.logger.Debug("Проект создан", zap.Int64("id", id))
	return id, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p entities.Project) error {
	query, args, err := psql.Update(projectTable).
		SetMap(projectValues(p)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return wrapErr("project update: build", err)
	}
	return execAffecting(ctx, r.storage, "project update", query, args)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(projectTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return wrapErr("project delete: build", err)
	}
	return execAffecting(ctx, r.storage, "project delete", query, args)
}

func (r *ProjectRepository) SetPinned(ctx context.Context, id int64, pinned bool) error {
	query, args, err := psql.Update(projectTable).
		Set("is_pinned", pinned).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapErr("project pin: build", err)
	}
	return execAffecting(ctx, r.storage, "project pin", query, args)
}
