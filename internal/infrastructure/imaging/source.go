package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

// Source decodes uploaded objects into rasters and produces the rotated
// and upscaled variants the recognition ladder asks for. PDF pages go
// through pdftoppm; everything else decodes in-process.
type Source struct {
	rasterDPI int
}

func NewSource() *Source {
	return &Source{rasterDPI: 300}
}

func (s *Source) Acquire(ctx context.Context, filename string, data io.Reader) (image.Image, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrImageAcquisition, "read object", err)
	}
	if len(raw) == 0 {
		return nil, domain.WrapError(domain.ErrImageAcquisition, "read object", fmt.Errorf("empty object"))
	}

	if isPDF(filename, raw) {
		img, err := s.rasterizePDF(ctx, raw)
		if err != nil {
			return nil, domain.WrapError(domain.ErrImageAcquisition, "rasterize pdf", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.WrapError(domain.ErrImageAcquisition, "decode image", err)
	}
	return img, nil
}

// Rotate maps pixels clockwise by the given angle. Angles outside
// {90, 180, 270} return the input unchanged.
func (s *Source) Rotate(img image.Image, angle int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var out *image.RGBA
	switch angle {
	case 90:
		out = image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(h-1-y, x, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	case 180:
		out = image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(w-1-x, h-1-y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	case 270:
		out = image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(y, w-1-x, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	default:
		return img
	}
	return out
}

func (s *Source) Upscale(img image.Image, factor float64) image.Image {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, bounds, draw.Over, nil)
	return out
}

// rasterizePDF shells out to pdftoppm for the first page only; the
// classification signal lives on page one.
func (s *Source) rasterizePDF(ctx context.Context, raw []byte) (image.Image, error) {
	dir, err := os.MkdirTemp("", "docsorter-raster-*")
	if err != nil {
		return nil, fmt.Errorf("raster temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "page.pdf")
	if err := os.WriteFile(src, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	outPrefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-f", "1", "-l", "1",
		"-r", fmt.Sprintf("%d", s.rasterDPI),
		"-singlefile",
		src, outPrefix,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	f, err := os.Open(outPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	return img, nil
}

func isPDF(filename string, raw []byte) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return bytes.HasPrefix(raw, []byte("%PDF-"))
}
