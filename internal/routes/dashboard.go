package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
)

// Дашборд доступен любой роли; состав данных зависит от роли внутри сервиса.
func runDashboardRouter(secureGroup *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	secureGroup.GET("/dashboard", dashboardCtrl.GetDashboard)
}
