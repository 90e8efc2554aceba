package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

type ReportServiceInterface interface {
	ProjectReport(ctx context.Context, role string) ([]dto.ProjectReportRowDTO, error)
}

type reportService struct {
	projectRepo   repositories.ProjectRepositoryInterface
	techRepo      repositories.TechnicalRequestRepositoryInterface
	clearanceRepo repositories.ClearanceRequestRepositoryInterface
	logger        *zap.Logger
}

func NewReportService(
	projectRepo repositories.ProjectRepositoryInterface,
	techRepo repositories.TechnicalRequestRepositoryInterface,
	clearanceRepo repositories.ClearanceRequestRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		projectRepo:   projectRepo,
		techRepo:      techRepo,
		clearanceRepo: clearanceRepo,
		logger:        logger,
	}
}

// ProjectReport - по строке на проект в порядке репозитория (закреплённые первыми).
// Заявки привязываются так же, как в карточке проекта.
func (s *reportService) ProjectReport(ctx context.Context, role string) ([]dto.ProjectReportRowDTO, error) {
	withClearance := constants.CanViewClearance(role)

	var (
		projects  []entities.Project
		tech      []entities.TechnicalRequest
		clearance []entities.ClearanceRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = s.projectRepo.List(gctx); return })
	g.Go(func() (err error) { tech, err = s.techRepo.List(gctx, repositories.RequestFilter{}); return })
	if withClearance {
		g.Go(func() (err error) { clearance, err = s.clearanceRepo.List(gctx, repositories.RequestFilter{}); return })
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Ошибка загрузки данных для отчёта", zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось сформировать отчёт", err, nil)
	}

	links := dashboard.LinkRequests(projects, tech, clearance)
	rows := make([]dto.ProjectReportRowDTO, 0, len(projects))
	for _, p := range projects {
		linked := links.For(p.ID)
		row := dto.ProjectReportRowDTO{
			ProjectID:         p.ID,
			Name:              p.DisplayName(),
			Client:            p.Client,
			Status:            p.Status,
			Category:          dashboard.NormalizeStatus(p.Status),
			Percent:           dashboard.RoundHalfUp(p.Progress),
			Units:             p.Units,
			ElectricityMeters: p.ElectricityMeters,
			WaterMeters:       p.WaterMeters,
			TechnicalTotal:    len(linked.Technical),
			Pinned:            p.IsPinned,
		}
		for _, t := range linked.Technical {
			if !dashboard.NormalizeStatus(t.Status).Terminal() {
				row.TechnicalOpen++
			}
		}
		if withClearance {
			n := len(linked.Clearance)
			row.ClearanceTotal = &n
		}
		rows = append(rows, row)
	}

	s.logger.Debug("Отчёт по проектам сформирован", zap.Int("rows", len(rows)), zap.String("role", role))
	return rows, nil
}
