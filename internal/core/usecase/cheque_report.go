package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/core/ports"
)

// ChequeReportUseCase runs the remote structured-extraction model over every
// document filed into the cheque bucket and assembles the batch report. A
// single unreadable cheque never aborts the batch; it contributes an
// all-null record carrying the error.
type ChequeReportUseCase struct {
	repo      ports.DocumentRepository
	storage   ports.ObjectStorage
	images    ports.ImageSource
	extractor ports.ChequeFieldExtractor
	sink      ports.ChequeReportSink
	now       func() time.Time
}

func NewChequeReportUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	images ports.ImageSource,
	extractor ports.ChequeFieldExtractor,
	sink ports.ChequeReportSink,
) *ChequeReportUseCase {
	return &ChequeReportUseCase{
		repo:      repo,
		storage:   storage,
		images:    images,
		extractor: extractor,
		sink:      sink,
		now:       time.Now,
	}
}

func (uc *ChequeReportUseCase) BuildReport(ctx context.Context) (*domain.ChequeReport, error) {
	docs, err := uc.repo.ListByCategory(ctx, domain.CategoryCheque)
	if err != nil {
		return nil, fmt.Errorf("list cheque documents: %w", err)
	}

	report := &domain.ChequeReport{Records: make([]domain.ChequeRecord, 0, len(docs))}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record := uc.extractOne(ctx, doc)
		report.Total++
		if record.Error == "" && !record.Fields.Empty() {
			report.Extracted++
		} else {
			report.Failed++
		}
		report.Records = append(report.Records, record)
	}

	path, err := uc.sink.Write(ctx, report, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("write cheque report: %w", err)
	}
	report.ReportPath = path
	return report, nil
}

func (uc *ChequeReportUseCase) extractOne(ctx context.Context, doc domain.Document) domain.ChequeRecord {
	record := domain.ChequeRecord{DocumentID: doc.ID, Filename: doc.Filename}

	key := doc.FiledPath
	if key == "" {
		key = doc.StoragePath
	}
	reader, err := uc.storage.Open(ctx, key)
	if err != nil {
		record.Error = fmt.Sprintf("open cheque object: %v", err)
		return record
	}
	defer reader.Close()

	img, err := uc.images.Acquire(ctx, doc.Filename, reader)
	if err != nil {
		record.Error = fmt.Sprintf("acquire cheque image: %v", err)
		return record
	}

	fields, err := uc.extractor.ExtractFields(ctx, img)
	if err != nil {
		record.Error = fmt.Sprintf("extract cheque fields: %v", err)
		return record
	}
	record.Fields = fields
	return record
}
