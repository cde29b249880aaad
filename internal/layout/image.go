package layout

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
)

// imageProbe is what the file header says about an image
type imageProbe struct {
	width, height float64
	format        string // png, jpg or gif, as the PDF writer names them
}

// probeImage reads the native pixel size and format of an image file.
// The format comes from the content, never from the file extension.
func probeImage(path string) (imageProbe, error) {
	f, err := os.Open(path)
	if err != nil {
		return imageProbe{}, &ResourceNotFoundError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return imageProbe{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return imageProbe{}, fmt.Errorf("image %s has zero size", path)
	}
	if format == "jpeg" {
		format = "jpg"
	}
	return imageProbe{width: float64(cfg.Width), height: float64(cfg.Height), format: format}, nil
}

// imageSize computes the final size of an image. Pixels map 1:1 to points.
func imageSize(nativeW, nativeH, width, height float64, maintainRatio bool) (float64, float64) {
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		if maintainRatio {
			return width, nativeH * (width / nativeW)
		}
		return width, width
	case height > 0:
		if maintainRatio {
			return nativeW * (height / nativeH), height
		}
		return height, height
	default:
		return nativeW, nativeH
	}
}
