package processor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	_defaultMaxWidth  = 1080
	_defaultMaxHeight = 1920
	_jpegQuality      = 90

	badgePadding = 8
	badgeScale   = 3
)

type ImageProcessor struct {
	maxWidth  int
	maxHeight int
}

func New() *ImageProcessor {
	return &ImageProcessor{
		maxWidth:  _defaultMaxWidth,
		maxHeight: _defaultMaxHeight,
	}
}

// Normalize applies EXIF orientation, shrinks the image to fit the frame and
// rewrites it in place as JPEG. Images already inside the frame are not upscaled.
func (p *ImageProcessor) Normalize(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ImageProcessor - Normalize: %w", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("ImageProcessor - Normalize - imaging.Open: %w: %v", errs.ErrInvalidInput, err)
	}

	b := img.Bounds()
	if b.Dx() > p.maxWidth || b.Dy() > p.maxHeight {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("ImageProcessor - Normalize - os.CreateTemp: %w", err)
	}
	defer os.Remove(tmp.Name())

	err = imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(_jpegQuality))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("ImageProcessor - Normalize - imaging.Encode: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ImageProcessor - Normalize - os.Rename: %w", err)
	}

	return nil
}

// RenderBadge draws text in white on a translucent dark plate and saves it as PNG.
// The result serves as the default branding overlay.
func (p *ImageProcessor) RenderBadge(text, dst string) error {
	face := basicfont.Face7x13

	d := &font.Drawer{Face: face}
	textWidth := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	small := imaging.New(textWidth+2*badgePadding, textHeight+2*badgePadding, color.NRGBA{A: 140})

	rgba := image.NewRGBA(small.Bounds())
	draw.Draw(rgba, rgba.Bounds(), small, image.Point{}, draw.Src)

	d.Dst = rgba
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(badgePadding, badgePadding+metrics.Ascent.Ceil())
	d.DrawString(text)

	// basicfont is tiny; scale up with nearest neighbour to keep the glyphs crisp
	badge := imaging.Resize(rgba, rgba.Bounds().Dx()*badgeScale, 0, imaging.NearestNeighbor)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("ImageProcessor - RenderBadge - os.MkdirAll: %w", err)
	}

	if err := imaging.Save(badge, dst); err != nil {
		return fmt.Errorf("ImageProcessor - RenderBadge - imaging.Save: %w", err)
	}

	return nil
}
