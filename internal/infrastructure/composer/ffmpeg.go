package composer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

const (
	_defaultBinary        = "ffmpeg"
	_defaultTimeout       = 5 * time.Minute
	_defaultImageDuration = 2 * time.Second
	_defaultWidth         = 1080
	_defaultHeight        = 1920
	_defaultFrameRate     = 30
	_brandingMargin       = 20

	manifestName = "input.txt"
)

// EncodingError is returned when the encoder exits non-zero or runs out of time.
type EncodingError struct {
	Output []byte
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v: %s", errs.ErrEncodingFailed, e.Err, strings.TrimSpace(tail(e.Output, 2048)))
}

func (e *EncodingError) Unwrap() []error {
	return []error{errs.ErrEncodingFailed, e.Err}
}

type FFmpeg struct {
	binary        string
	timeout       time.Duration
	brandingAsset string
	imageDuration time.Duration
	width         int
	height        int
	frameRate     int
}

func New(opts ...Option) *FFmpeg {
	f := &FFmpeg{
		binary:        _defaultBinary,
		timeout:       _defaultTimeout,
		imageDuration: _defaultImageDuration,
		width:         _defaultWidth,
		height:        _defaultHeight,
		frameRate:     _defaultFrameRate,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// AssertReady checks that the encoder binary can be found.
func (f *FFmpeg) AssertReady() error {
	if _, err := exec.LookPath(f.binary); err != nil {
		return fmt.Errorf("FFmpeg - AssertReady - exec.LookPath(%s): %w", f.binary, err)
	}
	return nil
}

// Compose encodes inputs, in order, into dst. The concat manifest is written next to dst.
func (f *FFmpeg) Compose(ctx context.Context, inputs []string, dst string, mode entity.RenderMode) error {
	if len(inputs) == 0 {
		return fmt.Errorf("FFmpeg - Compose: %w: no input images", errs.ErrInvalidInput)
	}

	for _, in := range inputs {
		if err := readable(in); err != nil {
			return fmt.Errorf("FFmpeg - Compose: %w: %v", errs.ErrInvalidInput, err)
		}
	}

	branded := mode == entity.RenderBranded
	if branded {
		if f.brandingAsset == "" {
			return fmt.Errorf("FFmpeg - Compose: %w: branded mode without a branding asset", errs.ErrInvalidInput)
		}
		if err := readable(f.brandingAsset); err != nil {
			return fmt.Errorf("FFmpeg - Compose: %w: branding asset: %v", errs.ErrInvalidInput, err)
		}
	}

	manifest := filepath.Join(filepath.Dir(dst), manifestName)
	if err := os.WriteFile(manifest, f.manifest(inputs), 0o600); err != nil {
		return fmt.Errorf("FFmpeg - Compose - os.WriteFile: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, f.binary, f.args(manifest, dst, branded)...)
	// the encoder may spawn nothing, but make sure a killed run does not hang on pipes
	cmd.WaitDelay = time.Second

	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", f.timeout, err)
		}
		return &EncodingError{Output: out, Err: err}
	}

	return nil
}

// manifest renders a concat demuxer script. The last image is listed twice because the
// demuxer ignores the duration of the final entry.
func (f *FFmpeg) manifest(inputs []string) []byte {
	var b strings.Builder

	b.WriteString("ffconcat version 1.0\n")

	seconds := strconv.FormatFloat(f.imageDuration.Seconds(), 'f', -1, 64)
	for _, in := range inputs {
		fmt.Fprintf(&b, "file '%s'\nduration %s\n", escape(in), seconds)
	}
	fmt.Fprintf(&b, "file '%s'\n", escape(inputs[len(inputs)-1]))

	return []byte(b.String())
}

func (f *FFmpeg) args(manifest, dst string, branded bool) []string {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-f", "concat", "-safe", "0", "-i", manifest,
	}

	frame := fmt.Sprintf(
		"[0:v]scale=%[1]d:%[2]d:force_original_aspect_ratio=decrease,pad=%[1]d:%[2]d:(ow-iw)/2:(oh-ih)/2,setsar=1",
		f.width, f.height,
	)

	var graph string
	if branded {
		args = append(args, "-i", f.brandingAsset)
		graph = fmt.Sprintf("%s[base];[base][1:v]overlay=W-w-%[2]d:H-h-%[2]d[v]", frame, _brandingMargin)
	} else {
		graph = frame + "[v]"
	}

	return append(args,
		"-filter_complex", graph,
		"-map", "[v]",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(f.frameRate),
		"-movflags", "+faststart",
		dst,
	)
}

func readable(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return nil
}

func escape(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}
