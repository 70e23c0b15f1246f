package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/opinet-gateway/internal/config"
	"github.com/opinet-gateway/internal/delivery/http/handler"
	"github.com/opinet-gateway/internal/delivery/http/middleware"
	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/opinet-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	convertHandler *handler.ConvertHandler
	stationHandler *handler.StationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	convertHandler *handler.ConvertHandler,
	stationHandler *handler.StationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Coordinate Conversion API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		convertHandler: convertHandler,
		stationHandler: stationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(&s.config.CORS))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Index - описание API
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.IndexResponse{
			Message: "Coordinate Conversion API",
			Endpoints: []string{
				"/katec-to-wgs84?x={x_coord}&y={y_coord}",
				"/wgs84-to-katec?lon={longitude}&lat={latitude}",
			},
		})
	})

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Coordinate conversion routes
	s.app.Get("/katec-to-wgs84", s.convertHandler.KATECToWGS84)
	s.app.Get("/wgs84-to-katec", s.convertHandler.WGS84ToKATEC)

	// Opinet proxy routes
	api := s.app.Group("/api")
	api.Get("/nearby-gas-stations", s.stationHandler.NearbyStations)
	api.Get("/detailById", s.stationHandler.DetailByID)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		detail := err.Error()

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			code = appErr.StatusCode
			detail = appErr.Message
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"detail": detail,
		})
	}
}
