package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/dto"
	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

type DashboardOptions struct {
	Role          string
	ActivityLimit int
	TopLimit      int
}

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, opts DashboardOptions) (*dto.DashboardDTO, error)
	Warm(ctx context.Context) error
	Invalidate(ctx context.Context) error
}

type DashboardSettings struct {
	CacheTTL      time.Duration
	ActivityLimit int
	TopLimit      int
}

type DashboardService struct {
	projectRepo   repositories.ProjectRepositoryInterface
	techRepo      repositories.TechnicalRequestRepositoryInterface
	clearanceRepo repositories.ClearanceRequestRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	settings      DashboardSettings
	logger        *zap.Logger
	now           func() time.Time

	mu    sync.Mutex
	memos map[string]*dashboard.Memo
}

// NewDashboardService; cache может быть nil - тогда работает только память процесса.
func NewDashboardService(
	projectRepo repositories.ProjectRepositoryInterface,
	techRepo repositories.TechnicalRequestRepositoryInterface,
	clearanceRepo repositories.ClearanceRequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	settings DashboardSettings,
	logger *zap.Logger,
) *DashboardService {
	if settings.ActivityLimit <= 0 {
		settings.ActivityLimit = constants.DefaultActivityLimit
	}
	if settings.TopLimit <= 0 {
		settings.TopLimit = constants.DefaultTopProjects
	}
	return &DashboardService{
		projectRepo:   projectRepo,
		techRepo:      techRepo,
		clearanceRepo: clearanceRepo,
		userRepo:      userRepo,
		cache:         cache,
		settings:      settings,
		logger:        logger,
		now:           time.Now,
		memos:         make(map[string]*dashboard.Memo),
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, opts DashboardOptions) (*dto.DashboardDTO, error) {
	role := opts.Role
	if !constants.IsKnownRole(role) {
		role = constants.RoleViewer
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = s.settings.ActivityLimit
	}
	if opts.TopLimit <= 0 {
		opts.TopLimit = s.settings.TopLimit
	}

	in, err := s.load(ctx, role)
	if err != nil {
		s.logger.Error("Ошибка загрузки данных дашборда", zap.String("role", role), zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка загрузки дашборда", err, nil)
	}
	in.ActivityLimit = opts.ActivityLimit
	in.TopLimit = opts.TopLimit

	key := constants.DashboardCacheKey(role, dashboard.Fingerprint(in))
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	view, _ := s.memo(role).Get(in)
	result := &dto.DashboardDTO{View: view, Role: role, GeneratedAt: s.now().UTC()}
	s.toCache(ctx, key, result)
	return result, nil
}

// load читает все коллекции параллельно. Для ролей без доступа к переоформлению собственности
// коллекция остаётся пустой, а не отфильтрованной.
func (s *DashboardService) load(ctx context.Context, role string) (dashboard.Input, error) {
	var (
		in        dashboard.Input
		projects  []entities.Project
		tech      []entities.TechnicalRequest
		clearance []entities.ClearanceRequest
		users     []entities.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = s.projectRepo.List(gctx); return })
	g.Go(func() (err error) { tech, err = s.techRepo.List(gctx, repositories.RequestFilter{}); return })
	if constants.CanViewClearance(role) {
		g.Go(func() (err error) { clearance, err = s.clearanceRepo.List(gctx, repositories.RequestFilter{}); return })
	}
	g.Go(func() (err error) { users, err = s.userRepo.List(gctx); return })
	if err := g.Wait(); err != nil {
		return in, err
	}
	in.Projects, in.Tech, in.Clearance, in.Users = projects, tech, clearance, users
	return in, nil
}

func (s *DashboardService) memo(role string) *dashboard.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.memos[role]
	if !ok {
		m = &dashboard.Memo{}
		s.memos[role] = m
	}
	return m
}

func (s *DashboardService) fromCache(ctx context.Context, key string) (*dto.DashboardDTO, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("Кеш дашборда недоступен", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var cached dto.DashboardDTO
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		s.logger.Warn("Повреждённая запись кеша дашборда", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	cached.Cached = true
	return &cached, true
}

func (s *DashboardService) toCache(ctx context.Context, key string, result *dto.DashboardDTO) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Не удалось сериализовать дашборд", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.settings.CacheTTL); err != nil {
		s.logger.Warn("Не удалось записать дашборд в кеш", zap.String("key", key), zap.Error(err))
	}
}

// Warm строит и кладёт в кеш представление администратора с лимитами по умолчанию.
func (s *DashboardService) Warm(ctx context.Context) error {
	_, err := s.GetDashboard(ctx, DashboardOptions{Role: constants.RoleAdmin})
	return err
}

// Invalidate удаляет все закешированные представления.
func (s *DashboardService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	n, err := s.cache.DelByPattern(ctx, constants.CacheKeyDashboardPattern)
	if err != nil {
		return err
	}
	s.logger.Debug("Кеш дашборда очищен", zap.Int("keys", n))
	return nil
}
