package v1

import (
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
)

type V1 struct {
	gen    usecase.GenerationUseCase
	hl     usecase.HighlightUseCase
	photo  usecase.PhotoUseCase
	logger logger.Interface
}
