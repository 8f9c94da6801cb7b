package v1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/middleware"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/validate"
	"github.com/gofiber/fiber/v2"
)

func (r *V1) uploadPhoto(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "file is required")
	}

	// 1. size
	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "file is empty")
	}
	if file.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge, "INVALID_INPUT",
			fmt.Sprintf("file size cant be more than %d bytes", validate.MaxFileSize))
	}

	// 2. content type and extension
	contentType := file.Header.Get(fiber.HeaderContentType)
	if !validate.AllowedContentTypes[contentType] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "INVALID_INPUT", "unsupported file type. Allowed: jpeg, png")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !validate.AllowedExtensions[ext] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "INVALID_INPUT", "unsupported file extension. Allowed: .jpg, .jpeg, .png")
	}

	// 3. capture time
	takenAt := time.Now()
	if v := ctx.FormValue("taken_at"); v != "" {
		takenAt, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", "taken_at must be RFC3339")
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadPhoto - file.Open")

		return errorResponse(ctx, http.StatusInternalServerError, "INTERNAL", "problems with opening the file")
	}
	defer fileReader.Close()

	photo, err := r.photo.Upload(ctx.UserContext(), middleware.UserID(ctx), fileReader, ext, contentType, file.Size, takenAt)
	if err != nil {
		return r.useCaseError(ctx, err, "uploadPhoto")
	}

	return ctx.Status(http.StatusCreated).JSON(response.NewPhoto(photo))
}

func (r *V1) getStats(ctx *fiber.Ctx) error {
	stats, err := r.photo.Stats(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		return r.useCaseError(ctx, err, "getStats")
	}

	return ctx.Status(http.StatusOK).JSON(response.NewStats(stats))
}
