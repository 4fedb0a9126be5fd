package ports

import (
	"context"
	"io"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document
// classification.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// ChequeReportBuilder runs structured extraction over every filed cheque and
// produces the batch report.
type ChequeReportBuilder interface {
	BuildReport(ctx context.Context) (*domain.ChequeReport, error)
}
