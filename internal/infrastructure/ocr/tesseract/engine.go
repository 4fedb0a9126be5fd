package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/infrastructure/resilience"
)

// Engine recognizes text on a raster through a long-lived Tesseract
// client. The client is not safe for concurrent use, so calls serialize
// behind a mutex; the worker processes one page at a time anyway.
type Engine struct {
	language string
	exec     *resilience.Executor

	mu     sync.Mutex
	client *gosseract.Client
}

func New(language string, exec *resilience.Executor) (*Engine, error) {
	if language == "" {
		language = "tur"
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr language: %w", err)
	}
	return &Engine{language: language, exec: exec, client: client}, nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}

// Recognize returns the page text lower-cased. An empty page is not an
// error; the caller treats blank text as a failed attempt.
func (e *Engine) Recognize(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode raster: %w", err)
	}

	var text string
	run := func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.mu.Lock()
		defer e.mu.Unlock()

		if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
			return domain.WrapError(domain.ErrTemporary, "set ocr image", err)
		}
		out, err := e.client.Text()
		if err != nil {
			return domain.WrapError(domain.ErrTemporary, "ocr text", err)
		}
		text = out
		return nil
	}

	var err error
	if e.exec != nil {
		err = e.exec.Execute(ctx, "tesseract_recognize", run, nil)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(text)), nil
}
