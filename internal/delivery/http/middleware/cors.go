package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/opinet-gateway/internal/config"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Список origin фиксирован конфигурацией; для него разрешены
// credentials и все методы/заголовки.
func CORS(cfg *config.CORSConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,Authorization",
		AllowCredentials: true,
	})
}
