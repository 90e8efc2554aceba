package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
)

func runReportRouter(secureGroup *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/reports/projects", reportController.GetProjectReport)
}
