package restapi

import (
	"net/http"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/middleware"
	v1 "github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	app *fiber.App,
	jwtSecret []byte,
	gen usecase.GenerationUseCase,
	hl usecase.HighlightUseCase,
	photo usecase.PhotoUseCase,
	l logger.Interface,
) {
	app.Use(middleware.Metrics())

	// K8s liveness
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(http.StatusOK)
	})

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRoutes(apiV1Group, gen, hl, photo, middleware.Auth(jwtSecret), l)
	}
}
