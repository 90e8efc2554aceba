package services

import (
	"context"

	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
)

type TechnicalRequestServiceInterface interface {
	List(ctx context.Context, q dto.RequestListQueryDTO) ([]dto.TechnicalRequestDTO, error)
	Get(ctx context.Context, id int64) (*dto.TechnicalRequestDTO, error)
	Create(ctx context.Context, in dto.CreateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error)
	Update(ctx context.Context, id int64, in dto.UpdateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error)
	Delete(ctx context.Context, id int64) error
}

type TechnicalRequestService struct {
	*BaseService
	repo repositories.TechnicalRequestRepositoryInterface
}

func NewTechnicalRequestService(repo repositories.TechnicalRequestRepositoryInterface, bus EventPublisher, logger *zap.Logger) *TechnicalRequestService {
	return &TechnicalRequestService{BaseService: NewBaseService(bus, logger), repo: repo}
}

func toRequestFilter(q dto.RequestListQueryDTO) repositories.RequestFilter {
	f := repositories.RequestFilter{ProjectName: q.ProjectName, Search: q.Search, Limit: q.Limit}
	if q.ProjectID > 0 {
		id := q.ProjectID
		f.ProjectID = &id
	}
	return f
}

func (s *TechnicalRequestService) List(ctx context.Context, q dto.RequestListQueryDTO) ([]dto.TechnicalRequestDTO, error) {
	items, err := s.repo.List(ctx, toRequestFilter(q))
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicalRequestDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTechnicalRequestDTO(t))
	}
	return out, nil
}

func (s *TechnicalRequestService) Get(ctx context.Context, id int64) (*dto.TechnicalRequestDTO, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewTechnicalRequestDTO(*t)
	return &out, nil
}

func (s *TechnicalRequestService) Create(ctx context.Context, in dto.CreateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error) {
	id, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		s.logger.Error("Не удалось создать техническую заявку", zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventTechnicalRequestChanged, ActionCreate, id, 1)
	return s.Get(ctx, id)
}

// Update меняет запись и поднимает её в ленте активности (updated_at).
func (s *TechnicalRequestService) Update(ctx context.Context, id int64, in dto.UpdateTechnicalRequestDTO) (*dto.TechnicalRequestDTO, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(t)
	if err := s.repo.Update(ctx, *t); err != nil {
		s.logger.Error("Не удалось обновить техническую заявку", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventTechnicalRequestChanged, ActionUpdate, id, 1)
	return s.Get(ctx, id)
}

func (s *TechnicalRequestService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishChange(constants.EventTechnicalRequestChanged, ActionDelete, id, 1)
	return nil
}
