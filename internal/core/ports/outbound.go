package ports

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveOutcome(ctx context.Context, id string, outcome domain.ClassificationOutcome, filedPath string) error
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Document, error)
}

// ObjectStorage stores source documents and files them into category buckets.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// FileIntoCategory moves a stored object into the category bucket under
	// filename, resolving name collisions with a numeric suffix. It returns
	// the path of the filed object relative to the storage root.
	FileIntoCategory(ctx context.Context, key string, category domain.Category, filename string) (string, error)
}

// MessageQueue publishes/consumes document-ingested events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID string) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// ImageSource decodes a stored document into a raster and produces the
// rotated/upscaled variants consumed by recognition attempts. Transforms are
// pure and cheap relative to recognition.
type ImageSource interface {
	Acquire(ctx context.Context, filename string, data io.Reader) (image.Image, error)
	Rotate(img image.Image, angle int) image.Image
	Upscale(img image.Image, factor float64) image.Image
}

// RecognitionEngine turns one image variant into recognized text. The text is
// already lower-cased. Implementations honor ctx cancellation; a timeout is
// indistinguishable from an engine failure to the caller.
type RecognitionEngine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// TextLayerExtractor pulls embedded text out of a stored document without
// recognition, when the format carries one (PDF text layer). An empty string
// with nil error means no usable layer.
type TextLayerExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// ChequeFieldExtractor reads structured cheque fields off an image via the
// remote extraction model.
type ChequeFieldExtractor interface {
	ExtractFields(ctx context.Context, img image.Image) (domain.ChequeFields, error)
}

// ChequeReportSink persists a finished cheque report (workbook plus JSON
// payload) and returns the workbook path.
type ChequeReportSink interface {
	Write(ctx context.Context, report *domain.ChequeReport, generatedAt time.Time) (string, error)
}
