package validate

import (
	"fmt"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

const (
	MaxFileSize int64 = 10 * 1024 * 1024

	dateLayout = "2006-01-02"
)

var (
	AllowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}

	AllowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)

// ParseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", errs.ErrInvalidInput, field)
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339 or YYYY-MM-DD", errs.ErrInvalidInput, field)
	}

	return t, nil
}
