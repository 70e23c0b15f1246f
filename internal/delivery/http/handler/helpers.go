package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinet-gateway/internal/pkg/errors"
)

// requiredFloat читает обязательный числовой query-параметр. Отсутствие
// или мусор - ошибка 400 ещё до какого-либо преобразования или
// обращения к Opinet.
func requiredFloat(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.NewMissingParameter(name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.NewInvalidParameter(name, raw)
	}
	return v, nil
}

// optionalInt читает необязательный целочисленный query-параметр.
// Пустое значение заменяется значением по умолчанию, мусор - ошибка 400,
// а не молчаливая подстановка default.
func optionalInt(c *fiber.Ctx, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewInvalidParameter(name, raw)
	}
	return v, nil
}

// requiredString читает обязательный строковый query-параметр
func requiredString(c *fiber.Ctx, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", errors.NewMissingParameter(name)
	}
	return raw, nil
}
