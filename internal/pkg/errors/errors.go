package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewConversionError - проекционная библиотека отклонила входные координаты.
// Детерминировано для данного входа, не ретраится.
func NewConversionError(cause error) *AppError {
	return New(CodeConversionFailed, cause.Error(), http.StatusBadRequest)
}

// NewUpstreamUnreachable - транспортная ошибка при обращении к Opinet API
func NewUpstreamUnreachable(cause error) *AppError {
	return New(
		CodeUpstreamUnreachable,
		fmt.Sprintf("failed to reach upstream API: %v", cause),
		http.StatusBadRequest,
	)
}

// NewUpstreamError - Opinet вернул не-2xx статус; статус и тело
// пробрасываются клиенту без изменений
func NewUpstreamError(statusCode int, body string) *AppError {
	return New(CodeUpstreamError, body, statusCode)
}

func NewMissingParameter(name string) *AppError {
	return New(
		CodeMissingParameter,
		fmt.Sprintf("missing required query parameter: %s", name),
		http.StatusBadRequest,
	)
}

func NewInvalidParameter(name, value string) *AppError {
	return New(
		CodeInvalidParameter,
		fmt.Sprintf("invalid value for query parameter %s: %q", name, value),
		http.StatusBadRequest,
	)
}

func NewValidationError(cause error) *AppError {
	return New(CodeInvalidRequest, cause.Error(), http.StatusBadRequest)
}

var ErrInternalServer = New(
	CodeInternalServer,
	"Internal server error",
	http.StatusInternalServerError,
)
