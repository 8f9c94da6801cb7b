package composer

import "time"

type Option func(*FFmpeg)

func Binary(path string) Option {
	return func(f *FFmpeg) {
		f.binary = path
	}
}

func Timeout(timeout time.Duration) Option {
	return func(f *FFmpeg) {
		f.timeout = timeout
	}
}

// BrandingAsset is the image overlaid in branded mode.
func BrandingAsset(path string) Option {
	return func(f *FFmpeg) {
		f.brandingAsset = path
	}
}

func ImageDuration(d time.Duration) Option {
	return func(f *FFmpeg) {
		f.imageDuration = d
	}
}

func Size(width, height int) Option {
	return func(f *FFmpeg) {
		f.width = width
		f.height = height
	}
}

func FrameRate(fps int) Option {
	return func(f *FFmpeg) {
		f.frameRate = fps
	}
}
