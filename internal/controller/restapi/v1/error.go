package v1

import (
	"net/http"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

var statusByCode = map[string]int{
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_RANGE":          http.StatusBadRequest,
	"RANGE_TOO_LARGE":        http.StatusBadRequest,
	"UNAUTHENTICATED":        http.StatusUnauthorized,
	"FORBIDDEN":              http.StatusForbidden,
	"NOT_FOUND":              http.StatusNotFound,
	"ASSET_NOT_FOUND":        http.StatusNotFound,
	"GENERATION_IN_PROGRESS": http.StatusConflict,
	"HIGHLIGHT_NOT_READY":    http.StatusConflict,
	"TOO_FEW_PHOTOS":         http.StatusUnprocessableEntity,
	"TOO_MANY_PHOTOS":        http.StatusUnprocessableEntity,
	"RATE_LIMITED":           http.StatusTooManyRequests,
	"TRANSFER_FAILED":        http.StatusBadGateway,
}

func errorResponse(ctx *fiber.Ctx, status int, code, message string) error {
	return ctx.Status(status).JSON(response.NewError(code, message))
}

// useCaseError maps err onto the error taxonomy. Server-side failures are logged.
func (r *V1) useCaseError(ctx *fiber.Ctx, err error, op string) error {
	code := errs.Code(err)

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		r.logger.Error(err, "restapi - v1 - "+op)
	}

	return errorResponse(ctx, status, code, errs.Message(err))
}
