package usecase

import (
	"context"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/ekaraca/docsorter/internal/core/classify"
	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/core/identity"
	"github.com/ekaraca/docsorter/internal/core/ports"
)

// attemptSpec describes one rung of the recognition ladder.
type attemptSpec struct {
	angle    int
	upscaled bool
}

// recognitionPlan is the fixed attempt sequence: the four rotations of the
// source raster, then a single 2x upscale of the original orientation. The
// ladder short-circuits on the first confident classification, so no
// document ever costs more than five recognition calls.
var recognitionPlan = [...]attemptSpec{
	{angle: 0},
	{angle: 90},
	{angle: 180},
	{angle: 270},
	{angle: 0, upscaled: true},
}

const upscaleFactor = 2.0

// Recognizer drives the recognition ladder over a single source image.
type Recognizer interface {
	Run(ctx context.Context, src image.Image) domain.ClassificationOutcome
}

// RecognizeDocumentUseCase walks the recognition plan, classifying after each
// attempt and stopping at the first non-default category.
type RecognizeDocumentUseCase struct {
	images         ports.ImageSource
	engine         ports.RecognitionEngine
	table          *classify.Table
	attemptTimeout time.Duration
}

func NewRecognizeDocumentUseCase(
	images ports.ImageSource,
	engine ports.RecognitionEngine,
	table *classify.Table,
	attemptTimeout time.Duration,
) *RecognizeDocumentUseCase {
	return &RecognizeDocumentUseCase{
		images:         images,
		engine:         engine,
		table:          table,
		attemptTimeout: attemptTimeout,
	}
}

// Run executes the ladder. An engine failure or attempt timeout counts as an
// empty recognition result and the ladder proceeds to the next rung. When
// every rung yields the default category the identifier extractor still runs
// over the last non-empty recognized text, since identifier presence is
// independent of category confidence.
func (uc *RecognizeDocumentUseCase) Run(ctx context.Context, src image.Image) domain.ClassificationOutcome {
	var lastText string
	attempts := 0

	for _, spec := range recognitionPlan {
		if ctx.Err() != nil {
			break
		}

		attempts++
		text, err := uc.recognize(ctx, uc.variant(src, spec))
		if err != nil {
			slog.Warn("recognition_attempt_failed",
				"angle", spec.angle,
				"upscaled", spec.upscaled,
				"attempt", attempts,
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(text) != "" {
			lastText = text
		}

		if category := uc.table.Classify(text); category != domain.CategoryUnclassified {
			return outcomeFrom(category, text, attempts)
		}
	}

	return outcomeFrom(domain.CategoryUnclassified, lastText, attempts)
}

func (uc *RecognizeDocumentUseCase) variant(src image.Image, spec attemptSpec) image.Image {
	img := src
	if spec.upscaled {
		img = uc.images.Upscale(img, upscaleFactor)
	}
	if spec.angle != 0 {
		img = uc.images.Rotate(img, spec.angle)
	}
	return img
}

func (uc *RecognizeDocumentUseCase) recognize(ctx context.Context, img image.Image) (string, error) {
	if uc.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.attemptTimeout)
		defer cancel()
	}
	return uc.engine.Recognize(ctx, img)
}

func outcomeFrom(category domain.Category, text string, attempts int) domain.ClassificationOutcome {
	outcome := domain.ClassificationOutcome{Category: category, Attempts: attempts}
	if id, ok := identity.Extract(text); ok {
		outcome.Identifier = &id
	}
	return outcome
}
