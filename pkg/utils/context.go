package utils

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"project-dashboard/pkg/contextkeys"
	apperrors "project-dashboard/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || id == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// GetRoleFromCtx возвращает роль пользователя или пустую строку.
func GetRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(contextkeys.UserRoleKey).(string)
	return role
}

// ParseIDParam читает числовой path-параметр.
func ParseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Некорректный ID")
	}
	return id, nil
}
