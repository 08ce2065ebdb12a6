// Package compositor draws slides into wallpaper-sized JPEG images.
package compositor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG format support
	"os"
	"path/filepath"
	"sync"

	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultBlurRadius = 15.0
	coverHeightRatio  = 0.55 // Cover size as percentage of screen height
	backgroundDimming = -35.0
	jpegQuality       = 90
)

// some desktops ignore a wallpaper update that reuses the same URI
var slideFilenames = [2]string{"promocast_slide_a.jpg", "promocast_slide_b.jpg"}

// CompositorConfig holds configuration for slide composition
type CompositorConfig struct {
	BlurRadius       float64
	CoverSizePercent float64 // Cover size as percentage of screen height (0.0-1.0)
}

// SlideCompositor renders product and announcement slides
type SlideCompositor struct {
	logger *zap.Logger
	res    *domain.ScreenResolution
	config CompositorConfig
	appCfg domain.Config

	mu   sync.Mutex
	next int // index into slideFilenames
}

// NewSlideCompositor creates a compositor for the detected screen
func NewSlideCompositor(logger *zap.Logger, res *domain.ScreenResolution, appCfg domain.Config) *SlideCompositor {
	return &SlideCompositor{
		logger: logger,
		res:    res,
		appCfg: appCfg,
		config: CompositorConfig{
			BlurRadius:       defaultBlurRadius,
			CoverSizePercent: coverHeightRatio,
		},
	}
}

// Compose draws the slide for frame and encodes it as JPEG.
// art is optional; without it product slides use a flat theme background.
func (c *SlideCompositor) Compose(ctx context.Context, frame domain.Frame, art []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.res.Width <= 0 || c.res.Height <= 0 {
		return nil, fmt.Errorf("invalid screen resolution: %dx%d", c.res.Width, c.res.Height)
	}

	var canvas *image.NRGBA
	switch frame.Item.Kind {
	case domain.KindProduct:
		var cover image.Image
		if len(art) > 0 {
			img, _, err := image.Decode(bytes.NewReader(art))
			if err != nil {
				return nil, fmt.Errorf("failed to decode image: %w", err)
			}
			if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
				return nil, fmt.Errorf("invalid image dimensions: %dx%d", b.Dx(), b.Dy())
			}
			cover = img
		}
		canvas = c.drawProduct(frame, cover)

	case domain.KindAnnouncement:
		canvas = c.drawAnnouncement(frame)

	default:
		return nil, fmt.Errorf("nothing to compose for item kind %q", frame.Item.Kind)
	}

	// composition is CPU bound, a superseded request can still be dropped here
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	c.logger.Debug("Slide composed",
		zap.String("item", frame.Item.ID()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Generate composes the slide and writes it to the output directory,
// returning the absolute path of the file
func (c *SlideCompositor) Generate(ctx context.Context, frame domain.Frame, art []byte) (string, error) {
	data, err := c.Compose(ctx, frame, art)
	if err != nil {
		return "", fmt.Errorf("failed to compose slide: %w", err)
	}

	outputDir := c.appCfg.GetOutputDir()
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	c.mu.Lock()
	name := slideFilenames[c.next]
	c.next = (c.next + 1) % len(slideFilenames)
	c.mu.Unlock()

	outputPath := filepath.Join(outputDir, name)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write slide file: %w", err)
	}

	c.logger.Info("Slide generated",
		zap.String("path", outputPath),
		zap.String("item", frame.Item.Title()),
		zap.Int("size", len(data)))

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}
	return absPath, nil
}
