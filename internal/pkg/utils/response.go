package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/opinet-gateway/internal/pkg/errors"
)

// ErrorResponse - единая форма ошибки для всех эндпоинтов
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SendError переводит ошибку в HTTP-ответ. AppError несёт свой статус
// (для UpstreamError это статус, который вернул Opinet); всё остальное - 500.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Detail: appErr.Message,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Detail: errors.ErrInternalServer.Message,
	})
}
