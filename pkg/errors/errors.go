package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")
	ErrInvalidCredentials = fmt.Errorf("неверный email или пароль")
	ErrAccountLocked      = fmt.Errorf("слишком много неудачных попыток входа, попробуйте позже")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrEmptyFile  = fmt.Errorf("файл не содержит данных для импорта")
)

// HttpError - ошибка с HTTP-кодом. Message уходит клиенту, Err только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

// WithDetails прикрепляет тело ответа (например, ошибки строк импорта).
func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}

var statusBySentinel = []struct {
	err  error
	code int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrBadRequest, http.StatusBadRequest},
	{ErrEmptyFile, http.StatusBadRequest},
	{ErrForbidden, http.StatusForbidden},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrAccountLocked, http.StatusTooManyRequests},
	{ErrEmptyAuthHeader, http.StatusUnauthorized},
	{ErrInvalidAuthHeader, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTokenExpired, http.StatusUnauthorized},
	{ErrInvalidSigningMethod, http.StatusUnauthorized},
	{ErrTokenIsNotAccess, http.StatusUnauthorized},
	{ErrUserIDNotFoundInContext, http.StatusUnauthorized},
}

// StatusFor возвращает HTTP-код для известных ошибок (в том числе обёрнутых).
func StatusFor(err error) (int, bool) {
	for _, s := range statusBySentinel {
		if stderrors.Is(err, s.err) {
			return s.code, true
		}
	}
	return 0, false
}
