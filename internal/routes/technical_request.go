package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/middleware"
)

func runTechnicalRequestRouter(secureGroup *echo.Group, service services.TechnicalRequestServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewTechnicalRequestController(service, logger)
	canEdit := authMW.RequireRole(constants.TechnicalEditorRoles...)
	{
		secureGroup.GET("/technical-requests", ctrl.GetTechnicalRequests)
		secureGroup.GET("/technical-requests/:id", ctrl.FindTechnicalRequest)
		secureGroup.POST("/technical-requests", ctrl.CreateTechnicalRequest, canEdit)
		secureGroup.PUT("/technical-requests/:id", ctrl.UpdateTechnicalRequest, canEdit)
		secureGroup.DELETE("/technical-requests/:id", ctrl.DeleteTechnicalRequest, canEdit)
	}
}
