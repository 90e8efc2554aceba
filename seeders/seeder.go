package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"project-dashboard/internal/repositories"
)

// SeedUsers создаёт по одному пользователю на каждую роль.
func SeedUsers(db *pgxpool.Pool, password string) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания пользователей...")

	if err := seedUsers(ctx, db, password); err != nil {
		log.Fatalf("❌ Ошибка создания пользователей (Users): %v", err)
	}
	log.Println("✅ Создание пользователей завершено!")
}

// SeedDemoData наполняет проекты и заявки демонстрационными данными.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данных...")

	logger := zap.NewNop()
	d := demoSeeder{
		db:        db,
		projects:  repositories.NewProjectRepository(db, logger),
		technical: repositories.NewTechnicalRequestRepository(db, logger),
		clearance: repositories.NewClearanceRequestRepository(db, logger),
	}
	if err := d.seedProjects(ctx); err != nil {
		log.Fatalf("❌ Ошибка наполнения Проектов (Projects): %v", err)
	}
	if err := d.seedTechnicalRequests(ctx); err != nil {
		log.Fatalf("❌ Ошибка наполнения Технических заявок: %v", err)
	}
	if err := d.seedClearanceRequests(ctx); err != nil {
		log.Fatalf("❌ Ошибка наполнения Заявок на переоформление собственности: %v", err)
	}
	log.Println("✅ Наполнение демо-данных завершено!")
}
