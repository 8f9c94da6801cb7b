package infrastructure

import (
	"context"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
)

type (
	EventsSender interface {
		SendEvents(ctx context.Context, events []*entity.OutboxEvent) error
		Close() error
	}

	// MediaComposer turns ordered local images into one vertical video at dst.
	MediaComposer interface {
		Compose(ctx context.Context, inputs []string, dst string, mode entity.RenderMode) error
	}

	PhotoProcessor interface {
		// Normalize rewrites the image at path upright (EXIF orientation) and bounded
		// to the video frame.
		Normalize(ctx context.Context, path string) error
	}
)
