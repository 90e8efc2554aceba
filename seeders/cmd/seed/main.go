package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"project-dashboard/pkg/config"
	"project-dashboard/pkg/database/postgresql"
	"project-dashboard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runUsers := flag.Bool("users", false, "Создать пользователей для каждой роли")
	runDemo := flag.Bool("demo", false, "Наполнить проекты и заявки демо-данными")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -users -demo)")
	password := flag.String("password", "Password123!", "Пароль для создаваемых пользователей")
	hashOnly := flag.String("hash", "", "Только напечатать bcrypt-хеш пароля и выйти")

	flag.Parse()

	if *hashOnly != "" {
		hash, err := seeders.HashPassword(*hashOnly)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		fmt.Println(hash)
		return
	}

	if !*runUsers && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all -password 'S3cret!'")
		log.Println("  go run ./seeders/cmd/seed -hash 'S3cret!'")
		log.Println("======================================================")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, zap.NewNop())
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if err := postgresql.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("❌ Ошибка миграций: %v", err)
	}

	log.Println("======================================================")

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool, *password)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
