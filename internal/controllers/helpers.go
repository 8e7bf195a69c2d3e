package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"asset-system/internal/dto"
	apperrors "asset-system/pkg/errors"
)

func parseID(ctx echo.Context, message string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, message, err, nil)
	}
	return id, nil
}

// bindAndValidate - Bind + Validate, ошибки валидатора отдаются как есть.
func bindAndValidate(ctx echo.Context, payload interface{}) error {
	if err := ctx.Bind(payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Dữ liệu gửi lên không đúng định dạng", err, nil)
	}
	return ctx.Validate(payload)
}

// deleteReason - причина удаления из тела DELETE-запроса (тело необязательно).
func deleteReason(ctx echo.Context) (string, error) {
	if ctx.Request().ContentLength == 0 {
		return "", nil
	}
	var payload dto.DeleteDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return "", err
	}
	return payload.Reason, nil
}

func deleted(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusOK, dto.DeleteResultDTO{Success: true, Message: message})
}
