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

type TechnicalRequestController struct {
	service services.TechnicalRequestServiceInterface
	logger  *zap.Logger
}

func NewTechnicalRequestController(service services.TechnicalRequestServiceInterface, logger *zap.Logger) *TechnicalRequestController {
	return &TechnicalRequestController{service: service, logger: logger}
}

func bindListQuery(c echo.Context) (dto.RequestListQueryDTO, error) {
	var q dto.RequestListQueryDTO
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return q, apperrors.NewHttpError(http.StatusBadRequest, "Неверные параметры запроса", err, nil)
	}
	return q, c.Validate(&q)
}

func (ctrl *TechnicalRequestController) GetTechnicalRequests(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	q, err := bindListQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.List(c.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Список технических заявок получен", http.StatusOK)
}

func (ctrl *TechnicalRequestController) FindTechnicalRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Get(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Техническая заявка найдена", http.StatusOK)
}

func (ctrl *TechnicalRequestController) CreateTechnicalRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	var payload dto.CreateTechnicalRequestDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Create(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Техническая заявка создана", http.StatusCreated)
}

func (ctrl *TechnicalRequestController) UpdateTechnicalRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	var payload dto.UpdateTechnicalRequestDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Техническая заявка обновлена", http.StatusOK)
}

func (ctrl *TechnicalRequestController) DeleteTechnicalRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	if err := ctrl.service.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, nil, "Техническая заявка удалена", http.StatusOK)
}
