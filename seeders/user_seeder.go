package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"project-dashboard/pkg/constants"
)

type seedUser struct {
	fio   string
	email string
	role  string
}

var defaultUsers = []seedUser{
	{fio: "مدير النظام", email: "admin@dashboard.local", role: constants.RoleAdmin},
	{fio: "مدير المشاريع", email: "manager@dashboard.local", role: constants.RoleManager},
	{fio: "المهندس المشرف", email: "engineer@dashboard.local", role: constants.RoleEngineer},
	{fio: "مسؤول العلاقات العامة", email: "pr@dashboard.local", role: constants.RolePR},
	{fio: "مستخدم للعرض", email: "viewer@dashboard.local", role: constants.RoleViewer},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	for _, u := range defaultUsers {
		log.Printf("  - Создание пользователя '%s' (%s)...", u.email, u.role)
		var exists bool
		if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", u.email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			log.Println("    - Пользователь уже существует. Пропускаем.")
			continue
		}

		query := `INSERT INTO users (fio, email, role, password_hash) VALUES ($1, $2, $3, $4)`
		if _, err := db.Exec(ctx, query, u.fio, u.email, u.role, hash); err != nil {
			return fmt.Errorf("пользователь %s: %w", u.email, err)
		}
	}
	return nil
}

// HashPassword - bcrypt-хеш с DefaultCost, тот же формат, что проверяет вход.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при генерации хеша: %w", err)
	}
	return string(hashed), nil
}
