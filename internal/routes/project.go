package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/middleware"
)

func runProjectRouter(secureGroup *echo.Group, projectService services.ProjectServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	projectCtrl := controllers.NewProjectController(projectService, logger)
	canEdit := authMW.RequireRole(constants.ProjectEditorRoles...)
	{
		secureGroup.GET("/projects", projectCtrl.GetProjects)
		secureGroup.GET("/projects/:id", projectCtrl.FindProject)
		secureGroup.POST("/projects", projectCtrl.CreateProject, canEdit)
		secureGroup.PUT("/projects/:id", projectCtrl.UpdateProject, canEdit)
		secureGroup.DELETE("/projects/:id", projectCtrl.DeleteProject, canEdit)
		secureGroup.PATCH("/projects/:id/pin", projectCtrl.TogglePin, canEdit)
	}
}
