package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

type ClearanceRequestServiceInterface interface {
	List(ctx context.Context, q dto.RequestListQueryDTO) ([]dto.ClearanceRequestDTO, error)
	Get(ctx context.Context, id int64) (*dto.ClearanceRequestDTO, error)
	Create(ctx context.Context, in dto.CreateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error)
	Update(ctx context.Context, id int64, in dto.UpdateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
}

type ClearanceRequestService struct {
	*BaseService
	repo      repositories.ClearanceRequestRepositoryInterface
	txManager repositories.TxManagerInterface
}

func NewClearanceRequestService(
	repo repositories.ClearanceRequestRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) *ClearanceRequestService {
	return &ClearanceRequestService{BaseService: NewBaseService(bus, logger), repo: repo, txManager: txManager}
}

func (s *ClearanceRequestService) List(ctx context.Context, q dto.RequestListQueryDTO) ([]dto.ClearanceRequestDTO, error) {
	f := toRequestFilter(q)
	// у заявок на переоформление нет project_id
	f.ProjectID = nil
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClearanceRequestDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewClearanceRequestDTO(c))
	}
	return out, nil
}

func (s *ClearanceRequestService) Get(ctx context.Context, id int64) (*dto.ClearanceRequestDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewClearanceRequestDTO(*c)
	return &out, nil
}

func (s *ClearanceRequestService) Create(ctx context.Context, in dto.CreateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error) {
	id, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		s.logger.Error("Не удалось создать заявку на переоформление собственности", zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventClearanceRequestChanged, ActionCreate, id, 1)
	return s.Get(ctx, id)
}

func (s *ClearanceRequestService) Update(ctx context.Context, id int64, in dto.UpdateClearanceRequestDTO) (*dto.ClearanceRequestDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Apply(c)
	if err := s.repo.Update(ctx, *c); err != nil {
		s.logger.Error("Не удалось обновить заявку на переоформление собственности", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	s.publishChange(constants.EventClearanceRequestChanged, ActionUpdate, id, 1)
	return s.Get(ctx, id)
}

func (s *ClearanceRequestService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishChange(constants.EventClearanceRequestChanged, ActionDelete, id, 1)
	return nil
}

// Import разбирает xlsx и вставляет все корректные строки одной транзакцией.
// Ошибочные строки пропускаются и возвращаются в результате.
func (s *ClearanceRequestService) Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	parsed, err := ParseClearanceWorkbook(r)
	if err != nil {
		return nil, err
	}
	if len(parsed.Rows) == 0 {
		return nil, apperrors.NewBadRequestError(apperrors.ErrEmptyFile.Error()).
			WithDetails(dto.ImportResultDTO{Skipped: len(parsed.Errors), Errors: parsed.Errors})
	}

	batchID := uuid.New()
	var inserted int
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		n, err := s.repo.CreateBatch(ctx, tx, batchID, parsed.Rows)
		inserted = n
		return err
	})
	if err != nil {
		s.logger.Error("Импорт заявок на переоформление собственности откатан", zap.String("batch", batchID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Импорт заявок на переоформление собственности завершён",
		zap.String("batch", batchID.String()),
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(parsed.Errors)),
	)
	s.publishChange(constants.EventClearanceRequestImported, ActionImport, 0, inserted)
	return &dto.ImportResultDTO{
		BatchID:  batchID,
		Inserted: inserted,
		Skipped:  len(parsed.Errors),
		Errors:   parsed.Errors,
	}, nil
}
