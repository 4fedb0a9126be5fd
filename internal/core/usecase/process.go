package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ekaraca/docsorter/internal/core/classify"
	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/core/ports"
)

// ProcessDocumentUseCase runs the full pipeline for one stored document:
// text-layer fast path, recognition ladder, outcome persistence and category
// filing. Documents are processed independently; sharing is limited to the
// immutable keyword table.
type ProcessDocumentUseCase struct {
	repo       ports.DocumentRepository
	storage    ports.ObjectStorage
	images     ports.ImageSource
	textLayer  ports.TextLayerExtractor
	recognizer Recognizer
	table      *classify.Table
	now        func() time.Time
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	images ports.ImageSource,
	textLayer ports.TextLayerExtractor,
	recognizer Recognizer,
	table *classify.Table,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:       repo,
		storage:    storage,
		images:     images,
		textLayer:  textLayer,
		recognizer: recognizer,
		table:      table,
		now:        time.Now,
	}
}

// ProcessByID classifies the document and files it into its category bucket.
// A "processing-error" or "unclassified" outcome is a legitimate terminal
// state, not a pipeline failure; only infrastructure faults (repository,
// filing) mark the document failed.
func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		wrapped := fmt.Errorf("fetch document by id: %w", err)
		if failErr := uc.markFailed(ctx, documentID, wrapped); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", wrapped, failErr)
		}
		return wrapped
	}

	outcome := uc.classifyDocument(ctx, doc)

	filedPath, err := uc.fileDocument(ctx, doc, outcome)
	if err != nil {
		wrapped := fmt.Errorf("file document into category: %w", err)
		if failErr := uc.markFailed(ctx, documentID, wrapped); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", wrapped, failErr)
		}
		return wrapped
	}

	if err := uc.repo.SaveOutcome(ctx, doc.ID, outcome, filedPath); err != nil {
		wrapped := fmt.Errorf("save outcome: %w", err)
		if failErr := uc.markFailed(ctx, documentID, wrapped); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", wrapped, failErr)
		}
		return wrapped
	}

	if err := uc.markStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}
	return nil
}

// classifyDocument is total: every document yields an outcome. An image that
// cannot be acquired at all yields the "processing-error" category with zero
// recognition attempts.
func (uc *ProcessDocumentUseCase) classifyDocument(ctx context.Context, doc *domain.Document) domain.ClassificationOutcome {
	if outcome, ok := uc.tryTextLayer(ctx, doc); ok {
		return outcome
	}

	reader, err := uc.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return outcomeFrom(domain.CategoryProcessingError, "", 0)
	}
	defer reader.Close()

	img, err := uc.images.Acquire(ctx, doc.Filename, reader)
	if err != nil {
		return outcomeFrom(domain.CategoryProcessingError, "", 0)
	}

	return uc.recognizer.Run(ctx, img)
}

// tryTextLayer classifies an embedded text layer when the stored format has
// one. A confident classification here costs zero recognition calls; anything
// else falls through to the ladder.
func (uc *ProcessDocumentUseCase) tryTextLayer(ctx context.Context, doc *domain.Document) (domain.ClassificationOutcome, bool) {
	text, err := uc.textLayer.Extract(ctx, doc)
	if err != nil || strings.TrimSpace(text) == "" {
		return domain.ClassificationOutcome{}, false
	}
	lower := strings.ToLower(text)
	category := uc.table.Classify(lower)
	if category == domain.CategoryUnclassified {
		return domain.ClassificationOutcome{}, false
	}
	return outcomeFrom(category, lower, 0), true
}

func (uc *ProcessDocumentUseCase) fileDocument(ctx context.Context, doc *domain.Document, outcome domain.ClassificationOutcome) (string, error) {
	return uc.storage.FileIntoCategory(ctx, doc.StoragePath, outcome.Category, uc.filedName(doc, outcome))
}

// filedName embeds the verified identifier when one exists, in the
// {identifier}_{ddmmyyyy}.{ext} form; otherwise the original name is kept.
func (uc *ProcessDocumentUseCase) filedName(doc *domain.Document, outcome domain.ClassificationOutcome) string {
	if outcome.Identifier == nil {
		return doc.Filename
	}
	ext := filepath.Ext(doc.Filename)
	return fmt.Sprintf("%s_%s%s", outcome.Identifier.Value, uc.now().UTC().Format("02012006"), ext)
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	return uc.repo.UpdateStatus(ctx, documentID, status, errMessage)
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.markStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
