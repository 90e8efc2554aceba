package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/services"
	apperrors "project-dashboard/pkg/errors"
	"project-dashboard/pkg/middleware"
	"project-dashboard/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)

	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}

	token, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		logger.Warn("Login: неудачная попытка входа", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, token, "Вход выполнен", http.StatusOK)
}
