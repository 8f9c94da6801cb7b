package highlight

import (
	"time"

	"github.com/andreyxaxa/Highlight-Generator/pkg/ratelimit"
)

// Option -.
type Option func(*HighlightUseCase)

// Location is the zone in which calendar months are computed.
func Location(loc *time.Location) Option {
	return func(uc *HighlightUseCase) {
		if loc != nil {
			uc.location = loc
		}
	}
}

// PhotoBounds sets the photo count a highlight needs (min) and accepts (max).
func PhotoBounds(minPhotos, maxPhotos int) Option {
	return func(uc *HighlightUseCase) {
		uc.minPhotos = minPhotos
		uc.maxPhotos = maxPhotos
	}
}

func MaxRange(d time.Duration) Option {
	return func(uc *HighlightUseCase) {
		uc.maxRange = d
	}
}

func Limiter(l ratelimit.Limiter) Option {
	return func(uc *HighlightUseCase) {
		uc.limiter = l
	}
}

func Clock(now func() time.Time) Option {
	return func(uc *HighlightUseCase) {
		uc.clock = now
	}
}
