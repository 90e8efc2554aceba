package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
)

type ProjectServiceInterface interface {
	List(ctx context.Context) ([]dto.ProjectDTO, error)
	Get(ctx context.Context, id int64, role string) (*dto.ProjectDetailsDTO, error)
	Create(ctx context.Context, in dto.CreateProjectDTO) (*dto.ProjectDTO, error)
	Update(ctx context.Context, id int64, in dto.UpdateProjectDTO) (*dto.ProjectDTO, error)
	Delete(ctx context.Context, id int64) error
	TogglePin(ctx context.Context, id int64) (*dto.ProjectDTO, error)
}

type ProjectService struct {
	*BaseService
	projectRepo   repositories.ProjectRepositoryInterface
	techRepo      repositories.TechnicalRequestRepositoryInterface
	clearanceRepo repositories.ClearanceRequestRepositoryInterface
}

func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	techRepo repositories.TechnicalRequestRepositoryInterface,
	clearanceRepo repositories.ClearanceRequestRepositoryInterface,
	bus EventPublisher,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		BaseService:   NewBaseService(bus, logger),
		projectRepo:   projectRepo,
		techRepo:      techRepo,
		clearanceRepo: clearanceRepo,
	}
}

func (s *ProjectService) List(ctx context.Context) ([]dto.ProjectDTO, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.NewProjectDTO(p))
	}
	return out, nil
}

// Get возвращает проект с заявками. Привязка считается по всем проектам,
// иначе заявка с неоднозначным именем попала бы сюда.
func (s *ProjectService) Get(ctx context.Context, id int64, role string) (*dto.ProjectDetailsDTO, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		projects  []entities.Project
		tech      []entities.TechnicalRequest
		clearance []entities.ClearanceRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = s.projectRepo.List(gctx); return })
	g.Go(func() (err error) { tech, err = s.techRepo.List(gctx, repositories.RequestFilter{}); return })
	if constants.CanViewClearance(role) {
		g.Go(func() (err error) { clearance, err = s.clearanceRepo.List(gctx, repositories.RequestFilter{}); return })
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Ошибка загрузки заявок проекта", zap.Int64("projectID", id), zap.Error(err))
		return nil, err
	}

	linked := dashboard.LinkRequests(projects, tech, clearance).For(project.ID)
	details := &dto.ProjectDetailsDTO{
		ProjectDTO:        dto.NewProjectDTO(*project),
		TechnicalRequests: linked.Technical,
		ClearanceRequests: linked.Clearance,
	}
	if details.TechnicalRequests == nil {
		details.TechnicalRequests = []entities.TechnicalRequest{}
	}
	if details.ClearanceRequests == nil {
		details.ClearanceRequests = []entities.ClearanceRequest{}
	}
	return details, nil
}

func (s *ProjectService) Create(ctx context.Context, in dto.CreateProjectDTO) (*dto.ProjectDTO, error) {
	id, err := s.projectRepo.Create(ctx, in.ToEntity())
	if err != nil {
		s.logger.Error("Не удалось создать проект", zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventProjectChanged, ActionCreate, id, 1)
	return s.find(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, id int64, in dto.UpdateProjectDTO) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(project)
	if err := s.projectRepo.Update(ctx, *project); err != nil {
		s.logger.Error("Не удалось обновить проект", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventProjectChanged, ActionUpdate, id, 1)
	return s.find(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishChange(constants.EventProjectChanged, ActionDelete, id, 1)
	return nil
}

// TogglePin переключает закрепление; закреплённые проекты идут первыми в рейтинге.
func (s *ProjectService) TogglePin(ctx context.Context, id int64) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.SetPinned(ctx, id, !project.IsPinned); err != nil {
		return nil, err
	}
	s.publishChange(constants.EventProjectChanged, ActionPin, id, 1)
	return s.find(ctx, id)
}

func (s *ProjectService) find(ctx context.Context, id int64) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProjectDTO(*project)
	return &out, nil
}
