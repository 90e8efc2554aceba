package seeders

import (
	"context"
	"log"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
)

type demoSeeder struct {
	db        *pgxpool.Pool
	projects  repositories.ProjectRepositoryInterface
	technical repositories.TechnicalRequestRepositoryInterface
	clearance repositories.ClearanceRequestRepositoryInterface
}

var demoProjects = []entities.Project{
	{
		Name: "مشروع الريان السكني", Client: "شركة الريان للتطوير", Status: "قيد التنفيذ", Progress: 65,
		Units: 120, ElectricityMeters: 80, WaterMeters: 75, BuildingPermits: 1, SurveyDecisions: 1,
		ConsultantName: "مكتب البناء الهندسي", ConsultantPhone: "0551234567",
		ContractorName: "مؤسسة الإعمار", ContractorPhone: "0557654321",
		IsPinned: true,
	},
	{
		Title: "أبراج النخيل", Client: "مجموعة النخيل", Status: "completed", Progress: 100,
		Units: 64, ElectricityMeters: 64, WaterMeters: 64, BuildingPermits: 1, OccupancyCertificates: 1, SurveyDecisions: 1,
	},
	{
		Name: "فلل الياسمين", Client: "شركة الياسمين", Status: "pending", Progress: 20,
		Units: 40, ElectricityMeters: 10, WaterMeters: 8,
	},
	{
		Client: "مؤسسة الأفق العقارية", Status: "مرفوض", Progress: 5,
		Units: 12,
	},
}

func (d demoSeeder) seedProjects(ctx context.Context) error {
	log.Println("  - Создание демо-проектов...")
	var exists bool
	if err := d.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM projects)").Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("    - Проекты уже есть. Пропускаем.")
		return nil
	}
	for _, p := range demoProjects {
		if _, err := d.projects.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (d demoSeeder) seedTechnicalRequests(ctx context.Context) error {
	log.Println("  - Создание демо-технических заявок...")
	var exists bool
	if err := d.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM technical_requests)").Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("    - Технические заявки уже есть. Пропускаем.")
		return nil
	}

	var firstID int64
	if err := d.db.QueryRow(ctx, "SELECT id FROM projects ORDER BY id LIMIT 1").Scan(&firstID); err != nil {
		return err
	}

	requests := []entities.TechnicalRequest{
		// связь по id
		{ProjectID: null.Int64From(firstID), ServiceType: "توصيل عدادات الكهرباء", Status: "قيد المراجعة", Progress: 40, AssignedTo: null.StringFrom("م. خالد")},
		// связь только по имени
		{ProjectName: "أبراج النخيل", ServiceType: "شهادة إشغال", Status: "approved", Progress: 100},
		{ProjectName: "فلل الياسمين", ServiceType: "رخصة بناء", Status: "rejected", Progress: 0},
		{ProjectName: "مشروع غير مسجل", ServiceType: "قرار مساحي", Status: "new", Progress: 10},
	}
	for _, r := range requests {
		if _, err := d.technical.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (d demoSeeder) seedClearanceRequests(ctx context.Context) error {
	log.Println("  - Создание демо-заявок на переоформление собственности...")
	var exists bool
	if err := d.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM clearance_requests)").Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("    - Заявки на переоформление собственности уже есть. Пропускаем.")
		return nil
	}

	requests := []entities.ClearanceRequest{
		{ProjectName: "مشروع الريان السكني", ClientName: "عبدالله السالم", ClientNationalID: "1012345678", ClientPhone: "0501112233", UnitNumber: "A-12", Status: "مكتمل"},
		{ProjectName: "مشروع الريان السكني", ClientName: "سارة العتيبي", ClientNationalID: "1098765432", ClientPhone: "0504445566", UnitNumber: "B-03", Status: "قيد المراجعة", AssignedTo: null.StringFrom("فريق العلاقات العامة")},
		{ProjectName: "أبراج النخيل", ClientName: "محمد القحطاني", ClientNationalID: "1055555555", ClientPhone: "0507778899", UnitNumber: "T1-504", Status: "مرفوض"},
	}
	for _, c := range requests {
		if _, err := d.clearance.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
