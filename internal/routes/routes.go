package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/internal/controllers"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/config"
	"project-dashboard/pkg/middleware"
	"project-dashboard/pkg/service"
	"project-dashboard/pkg/utils"
	"project-dashboard/pkg/websocket"
)

// Dependencies - готовые сервисы, из которых собираются маршруты.
type Dependencies struct {
	JWT       service.JWTService
	Auth      services.AuthServiceInterface
	Dashboard services.DashboardServiceInterface
	Projects  services.ProjectServiceInterface
	Technical services.TechnicalRequestServiceInterface
	Clearance services.ClearanceRequestServiceInterface
	Reports   services.ReportServiceInterface
	Hub       *websocket.Hub
	Config    *config.Config
	Logger    *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	deps.Logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, deps.Logger)

	api.GET("/health", func(c echo.Context) error {
		return utils.SuccessResponse(c, map[string]int{"ws_clients": deps.Hub.ClientCount()}, "ok", http.StatusOK)
	})

	runAuthRouter(api, deps.Auth, deps.Logger)

	secureGroup := api.Group("", authMW.Auth)
	runDashboardRouter(secureGroup, deps.Dashboard, deps.Logger)
	runProjectRouter(secureGroup, deps.Projects, authMW, deps.Logger)
	runTechnicalRequestRouter(secureGroup, deps.Technical, authMW, deps.Logger)
	runClearanceRequestRouter(secureGroup, deps.Clearance, deps.Config.Upload.MaxSizeMB, authMW, deps.Logger)
	runReportRouter(secureGroup, deps.Reports, deps.Logger)

	wsCtrl := controllers.NewWebSocketController(deps.Hub, deps.JWT, deps.Config.Server.CORSOrigins, deps.Logger)
	e.GET("/ws", wsCtrl.ServeWs)

	deps.Logger.Info("InitRouter: Создание маршрутов завершено")
}
