package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/core/ports"
)

// Extractor pulls the embedded text layer out of stored PDFs. Scanned
// PDFs and raster formats yield no text, which sends the document to
// the recognition ladder instead.
type Extractor struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	if !strings.EqualFold(filepath.Ext(doc.Filename), ".pdf") {
		return "", nil
	}

	reader, err := e.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return "", fmt.Errorf("open stored pdf: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read stored pdf: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		// Malformed PDFs are the ladder's problem, not an extractor fault.
		return "", nil
	}

	var sb strings.Builder
	text, err := r.GetPlainText()
	if err != nil {
		return "", nil
	}
	if _, err := io.Copy(&sb, text); err != nil {
		return "", nil
	}
	return sb.String(), nil
}
