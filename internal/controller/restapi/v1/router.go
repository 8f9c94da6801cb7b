package v1

import (
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewRoutes(
	apiV1Group fiber.Router,
	gen usecase.GenerationUseCase,
	hl usecase.HighlightUseCase,
	photo usecase.PhotoUseCase,
	auth fiber.Handler,
	l logger.Interface,
) {
	r := &V1{gen: gen, hl: hl, photo: photo, logger: l}

	{
		// service-to-service intake
		apiV1Group.Post("/generate", r.generate)

		// user API
		apiV1Group.Post("/highlights/custom", auth, r.requestCustomHighlight)
		apiV1Group.Get("/highlights/:id", auth, r.getHighlight)
		apiV1Group.Get("/highlights/:id/video", auth, r.getHighlightVideo)
		apiV1Group.Post("/photos", auth, r.uploadPhoto)
		apiV1Group.Get("/stats", auth, r.getStats)
	}
}
