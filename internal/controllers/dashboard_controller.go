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

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(ds services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: ds, logger: logger}
}

func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)

	var q dto.DashboardQueryDTO
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверные параметры запроса", err, nil), logger)
	}
	if err := c.Validate(&q); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}

	view, err := ctrl.dashboardService.GetDashboard(c.Request().Context(), services.DashboardOptions{
		Role:          utils.GetRoleFromCtx(c.Request().Context()),
		ActivityLimit: q.ActivityLimit,
		TopLimit:      q.TopLimit,
	})
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, view, "Данные дашборда получены", http.StatusOK)
}
