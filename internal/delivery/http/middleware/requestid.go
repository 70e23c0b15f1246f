package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID - middleware, проставляющий идентификатор запроса.
// Клиентский идентификатор сохраняется, отсутствующий - генерируется.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
