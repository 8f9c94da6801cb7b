package v1

import (
	"net/http"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/middleware"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/request"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (r *V1) requestCustomHighlight(ctx *fiber.Ctx) error {
	var body request.CustomHighlight
	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "body must be JSON with start_date and end_date")
	}

	start, err := validate.ParseDate("start_date", body.StartDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	}
	end, err := validate.ParseDate("end_date", body.EndDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	}

	id, err := r.hl.RequestCustom(ctx.UserContext(), middleware.UserID(ctx), start, end)
	if err != nil {
		return r.useCaseError(ctx, err, "requestCustomHighlight")
	}

	return ctx.Status(http.StatusAccepted).JSON(response.CustomHighlight{HighlightID: id.String()})
}

func (r *V1) getHighlight(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "invalid id")
	}

	h, err := r.hl.Get(ctx.UserContext(), middleware.UserID(ctx), id)
	if err != nil {
		return r.useCaseError(ctx, err, "getHighlight")
	}

	return ctx.Status(http.StatusOK).JSON(response.NewHighlight(h))
}

func (r *V1) getHighlightVideo(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "invalid id")
	}

	body, err := r.hl.OpenVideo(ctx.UserContext(), middleware.UserID(ctx), id)
	if err != nil {
		return r.useCaseError(ctx, err, "getHighlightVideo")
	}

	ctx.Set(fiber.HeaderContentType, "video/mp4")

	return ctx.SendStream(body)
}
