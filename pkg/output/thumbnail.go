package output

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Thumbnail scales img so its longer side is maxSize pixels, keeping the
// aspect ratio. Images already small enough are copied unscaled.
func Thumbnail(img image.Image, maxSize int) (*image.RGBA, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThumbnailSize, maxSize)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width > maxSize || height > maxSize {
		if width >= height {
			height = max(1, height*maxSize/width)
			width = maxSize
		} else {
			width = max(1, width*maxSize/height)
			height = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == b.Dx() && height == b.Dy() {
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		return dst, nil
	}

	// CatmullRom approximates Lanczos
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// ThumbnailPath derives the thumbnail file name, e.g. "out/render.png" -> "out/render_thumb.png"
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
