package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"airwayserver/database"
	"airwayserver/internal/config"
	"airwayserver/server/handlers"
	"airwayserver/server/middleware"
	"airwayserver/server/services"
)

// Server HTTP сервер подбора совместимости воздуховодов и трубок
type Server struct {
	config *config.Config
	db     *database.DB

	catalogService  *services.CatalogService
	matchingService *services.MatchingService

	httpServer *http.Server
	started    time.Time
}

// NewServer собирает сервер: сервисы, обработчики и роутер
func NewServer(cfg *config.Config, db *database.DB) *Server {
	catalogService := services.NewCatalogService(db)
	matchingService := services.NewMatchingService(catalogService, cfg.DefaultToleranceMM)

	return &Server{
		config:          cfg,
		db:              db,
		catalogService:  catalogService,
		matchingService: matchingService,
		started:         time.Now(),
	}
}

// CatalogService возвращает сервис каталогов для начальной загрузки данных
func (s *Server) CatalogService() *services.CatalogService {
	return s.catalogService
}

// buildRouter создает Gin роутер со всеми middleware и маршрутами
func (s *Server) buildRouter() *gin.Engine {
	// Release для продакшена, переопределяется переменной окружения GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(s.config.RateLimitPerSecond, s.config.RateLimitBurst))
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	catalogHandler := handlers.NewCatalogHandler(s.catalogService)
	matchingHandler := handlers.NewMatchingHandler(s.matchingService)

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/brands", catalogHandler.HandleBrandsGin)
			catalogGroup.GET("/sizes", catalogHandler.HandleSizesGin)
			catalogGroup.GET("/tubes", catalogHandler.HandleTubesGin)
			catalogGroup.GET("/report", catalogHandler.HandleReportGin)
			catalogGroup.POST("/reload", catalogHandler.HandleReloadGin)
		}

		matchingGroup := api.Group("/matching")
		{
			matchingGroup.POST("/evaluate", matchingHandler.HandleEvaluateGin)
			matchingGroup.GET("/worst-case", matchingHandler.HandleWorstCaseGin)
			matchingGroup.POST("/export", matchingHandler.HandleExportGin)
		}
	}

	return router
}

// HealthResponse ответ проверки работоспособности
type HealthResponse struct {
	Status             string  `json:"status"`
	Uptime             string  `json:"uptime"`
	SADRecords         int     `json:"sad_records"`
	ETTRecords         int     `json:"ett_records"`
	DefaultToleranceMM float64 `json:"default_tolerance_mm"`
}

// handleHealth обработчик проверки работоспособности
// @Summary Проверка работоспособности
// @Description Возвращает статус сервера, размеры загруженных каталогов и допуск по умолчанию
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Статус сервера"
// @Router /health [get]
func (s *Server) handleHealth(c *gin.Context) {
	catalogs, _ := s.catalogService.Snapshot()

	c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		Uptime:             time.Since(s.started).Round(time.Second).String(),
		SADRecords:         len(catalogs.SADs),
		ETTRecords:         len(catalogs.ETTs),
		DefaultToleranceMM: s.matchingService.DefaultTolerance(),
	})
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.buildRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Выгрузка Excel может быть небыстрой
		IdleTimeout:  120 * time.Second,
	}

	Logger.Info("[Server] Starting HTTP server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed on %s: %w", addr, err)
	}
	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	Logger.Info("[Server] Shutting down HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
