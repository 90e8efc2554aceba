package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"project-dashboard/internal/listeners"
	"project-dashboard/internal/repositories"
	"project-dashboard/internal/routes"
	"project-dashboard/internal/services"
	"project-dashboard/pkg/config"
	"project-dashboard/pkg/database/postgresql"
	apperrors "project-dashboard/pkg/errors"
	"project-dashboard/pkg/eventbus"
	applogger "project-dashboard/pkg/logger"
	"project-dashboard/pkg/middleware"
	"project-dashboard/pkg/service"
	"project-dashboard/pkg/utils"
	"project-dashboard/pkg/websocket"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.InjectLogger(logger))
	e.Use(echomw.BodyLimit(bodyLimit(cfg.Upload.MaxSizeMB)))

	v := validator.New()
	if err := utils.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()
	if err := postgresql.Migrate(ctx, dbConn); err != nil {
		logger.Fatal("Ошибка миграций", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// без Redis дашборд работает на памяти процесса
		logger.Warn("Redis недоступен, кеш дашборда будет промахиваться", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)
	bus := eventbus.New(logger)

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, logger)
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	projectRepo := repositories.NewProjectRepository(dbConn, logger)
	techRepo := repositories.NewTechnicalRequestRepository(dbConn, logger)
	clearanceRepo := repositories.NewClearanceRequestRepository(dbConn, logger)
	userRepo := repositories.NewUserRepository(dbConn, logger)

	dashboardService := services.NewDashboardService(projectRepo, techRepo, clearanceRepo, userRepo, cacheRepo, services.DashboardSettings{
		CacheTTL:      cfg.Dashboard.CacheTTL,
		ActivityLimit: cfg.Dashboard.ActivityLimit,
		TopLimit:      cfg.Dashboard.TopProjects,
	}, logger)

	dashboardListener := listeners.NewDashboardListener(hub, dashboardService, cfg.Dashboard.RebuildDebounce, logger)
	dashboardListener.Register(bus)
	defer dashboardListener.Stop()

	refresher := services.NewDashboardRefresher(cfg.Dashboard.RefreshSpec, dashboardService, logger)
	if err := refresher.Start(); err != nil {
		logger.Fatal("Некорректное расписание прогрева дашборда", zap.String("spec", cfg.Dashboard.RefreshSpec), zap.Error(err))
	}
	defer refresher.Stop()
	go refresher.Refresh(ctx)

	routes.InitRouter(e, routes.Dependencies{
		JWT:       jwtSvc,
		Auth:      services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger),
		Dashboard: dashboardService,
		Projects:  services.NewProjectService(projectRepo, techRepo, clearanceRepo, bus, logger),
		Technical: services.NewTechnicalRequestService(techRepo, bus, logger),
		Clearance: services.NewClearanceRequestService(clearanceRepo, txManager, bus, logger),
		Reports:   services.NewReportService(projectRepo, techRepo, clearanceRepo, logger),
		Hub:       hub,
		Config:    cfg,
		Logger:    logger,
	})

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
}

// bodyLimit - лимит тела запроса для echo, с запасом на multipart-обвязку.
func bodyLimit(maxSizeMB int64) string {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return strconv.FormatInt(maxSizeMB+1, 10) + "M"
}
