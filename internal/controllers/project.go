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

type ProjectController struct {
	projectService services.ProjectServiceInterface
	logger         *zap.Logger
}

func NewProjectController(projectService services.ProjectServiceInterface, logger *zap.Logger) *ProjectController {
	return &ProjectController{projectService: projectService, logger: logger}
}

// bindAndValidate - общая обвязка Bind + Validate для тел запросов.
func bindAndValidate(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil)
	}
	return c.Validate(payload)
}

func (ctrl *ProjectController) GetProjects(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	res, err := ctrl.projectService.List(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Список проектов получен", http.StatusOK)
}

func (ctrl *ProjectController) FindProject(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	role := utils.GetRoleFromCtx(c.Request().Context())
	res, err := ctrl.projectService.Get(c.Request().Context(), id, role)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Проект найден", http.StatusOK)
}

func (ctrl *ProjectController) CreateProject(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	var payload dto.CreateProjectDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.projectService.Create(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Проект создан", http.StatusCreated)
}

func (ctrl *ProjectController) UpdateProject(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	var payload dto.UpdateProjectDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.projectService.Update(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Проект обновлён", http.StatusOK)
}

func (ctrl *ProjectController) DeleteProject(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	if err := ctrl.projectService.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, nil, "Проект удалён", http.StatusOK)
}

func (ctrl *ProjectController) TogglePin(c echo.Context) error {
	logger := middleware.LoggerFromCtx(c.Request().Context(), ctrl.logger)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	res, err := ctrl.projectService.TogglePin(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	return utils.SuccessResponse(c, res, "Закрепление проекта изменено", http.StatusOK)
}
