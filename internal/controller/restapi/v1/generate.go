package v1

import (
	"net/http"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// generate runs one generation synchronously and reports the published path.
func (r *V1) generate(ctx *fiber.Ctx) error {
	var req dto.GenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "body must be a JSON generation request")
	}

	if err := req.Validate(); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	}

	path, err := r.gen.Generate(ctx.UserContext(), req)
	if err != nil {
		return r.useCaseError(ctx, err, "generate")
	}

	return ctx.Status(http.StatusOK).JSON(response.Generate{Success: true, Path: path})
}
