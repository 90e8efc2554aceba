package repositories

import (
	"context"
	"errors"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"project-dashboard/internal/entities"
	apperrors "project-dashboard/pkg/errors"
)

const userTable = "users"

var userColumns = []string{"id", "fio", "email", "role", "password_hash", "created_at"}

type UserRepositoryInterface interface {
	List(ctx context.Context) ([]entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, u entities.User) (uint64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Fio, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// List возвращает только неудалённых пользователей: на них считается численность команды.
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	query, args, err := psql.Select(userColumns...).From(userTable).Where(sq.Eq{"deleted_at": nil}).OrderBy("id").ToSql()
	if err != nil {
		return nil, wrapErr("user list: build", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("user list", err)
	}
	defer rows.Close()

	out := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr("user list: scan", err)
		}
		out = append(out, u)
	}
	return out, wrapErr("user list: rows", rows.Err())
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).From(userTable).
		Where(sq.Eq{"email": email, "deleted_at": nil}).ToSql()
	if err != nil {
		return nil, wrapErr("user find: build", err)
	}
	u, err := scanUser(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("user find", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (uint64, error) {
	query, args, err := psql.Insert(userTable).
		Columns("fio", "email", "role", "password_hash").
		Values(u.Fio, u.Email, u.Role, u.PasswordHash).
		Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, wrapErr("user create: build", err)
	}
	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.NewHttpError(http.StatusConflict, "пользователь с таким email уже существует", err, nil)
		}
		return 0, wrapErr("user create", err)
	}
	return id, nil
}
