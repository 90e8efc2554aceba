package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/constants"
	"project-dashboard/pkg/middleware"
)

// Весь раздел переоформления собственности закрыт для ролей без доступа; менять могут те же роли.
func runClearanceRequestRouter(secureGroup *echo.Group, service services.ClearanceRequestServiceInterface, maxUploadMB int64, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewClearanceRequestController(service, maxUploadMB, logger)
	group := secureGroup.Group("/clearance-requests", authMW.RequireRole(constants.ClearanceRoles...))
	{
		group.GET("", ctrl.GetClearanceRequests)
		group.GET("/:id", ctrl.FindClearanceRequest)
		group.POST("", ctrl.CreateClearanceRequest)
		group.POST("/import", ctrl.ImportClearanceRequests)
		group.PUT("/:id", ctrl.UpdateClearanceRequest)
		group.DELETE("/:id", ctrl.DeleteClearanceRequest)
	}
}
