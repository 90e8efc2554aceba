package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/repositories"
	"project-dashboard/pkg/config"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
	"project-dashboard/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	cfg        config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, cacheRepo: cacheRepo, jwtService: jwtService, cfg: cfg, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(payload.Email)))
	if err != nil {
		// не раскрываем, существует ли email
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, user.ID)

	role := user.Role
	if !constants.IsKnownRole(role) {
		role = constants.RoleViewer
	}
	token, err := s.jwtService.GenerateAccessToken(user.ID, role)
	if err != nil {
		s.logger.Error("Не удалось выпустить токен", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return &dto.TokenDTO{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtService.GetAccessTokenTTL().Seconds()),
		Role:        role,
	}, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	if s.cacheRepo == nil {
		return nil
	}
	if _, err := s.cacheRepo.Get(ctx, fmt.Sprintf("lockout:%d", userID)); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	if s.cacheRepo == nil || s.cfg.MaxLoginAttempts <= 0 {
		return
	}
	attemptsKey := fmt.Sprintf("login_attempts:%d", userID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("Не удалось учесть попытку входа", zap.Uint64("userID", userID), zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		s.logger.Warn("Аккаунт временно заблокирован", zap.Uint64("userID", userID))
		_ = s.cacheRepo.Set(ctx, fmt.Sprintf("lockout:%d", userID), "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	if s.cacheRepo == nil {
		return
	}
	_ = s.cacheRepo.Del(ctx, fmt.Sprintf("login_attempts:%d", userID))
}
