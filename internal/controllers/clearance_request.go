package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/dto"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/middleware"
	"project-dashboard/pkg/utils"
)

type ClearanceRequestController struct {
	service     services.ClearanceRequestServiceInterface
	maxUploadMB int64
	logger      *zap.Logger
}

func NewClearanceRequestController(service services.ClearanceRequestServiceInterface, maxUploadMB int64, logger *zap.Logger) *ClearanceRequestController {
	return &ClearanceRequestController{service: service, maxUploadMB: maxUploadMB, logger: logger}
}

func (ctrl *ClearanceRequestController) GetClearanceRequests(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	q, err := bindListQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.List(c.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Список заявок на переоформление собственности получен", http.StatusOK)
}

func (ctrl *ClearanceRequestController) FindClearanceRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Get(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Заявка на переоформление собственности найдена", http.StatusOK)
}

func (ctrl *ClearanceRequestController) CreateClearanceRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	var payload dto.CreateClearanceRequestDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Create(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Заявка на переоформление собственности создана", http.StatusCreated)
}

func (ctrl *ClearanceRequestController) UpdateClearanceRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	var payload dto.UpdateClearanceRequestDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Заявка на переоформление собственности обновлена", http.StatusOK)
}

func (ctrl *ClearanceRequestController) DeleteClearanceRequest(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	if err := ctrl.service.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, nil, "Заявка на переоформление собственности удалена", http.StatusOK)
}

// ImportClearanceRequests принимает xlsx в поле "file".
func (ctrl *ClearanceRequestController) ImportClearanceRequests(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	data, header, err := readUpload(c, "file", constants.UploadContextClearanceBatch, ctrl.maxUploadMB)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	logger.Info("Импорт заявок на переоформление собственности", zap.String("file", header.Filename), zap.Int64("size", header.Size))

	res, err := ctrl.service.Import(c.Request().Context(), data)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Импорт завершён", http.StatusCreated)
}
