package bootstrap

import (
	"context"
	"fmt"

	"github.com/ekaraca/docsorter/internal/config"
	"github.com/ekaraca/docsorter/internal/core/classify"
	"github.com/ekaraca/docsorter/internal/core/ports"
	"github.com/ekaraca/docsorter/internal/core/usecase"
	"github.com/ekaraca/docsorter/internal/infrastructure/extractor/pdftext"
	"github.com/ekaraca/docsorter/internal/infrastructure/imaging"
	"github.com/ekaraca/docsorter/internal/infrastructure/llm/gemini"
	"github.com/ekaraca/docsorter/internal/infrastructure/ocr/tesseract"
	"github.com/ekaraca/docsorter/internal/infrastructure/queue/nats"
	"github.com/ekaraca/docsorter/internal/infrastructure/report/excel"
	"github.com/ekaraca/docsorter/internal/infrastructure/repository/postgres"
	"github.com/ekaraca/docsorter/internal/infrastructure/resilience"
	"github.com/ekaraca/docsorter/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Queue    ports.MessageQueue
	Repo     ports.DocumentRepository
	IngestUC ports.DocumentIngestor
	ReportUC ports.ChequeReportBuilder

	processUC func() (ports.DocumentProcessor, func() error, error)

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	table, err := loadKeywordTable(cfg.KeywordsPath)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, err
	}

	images := imaging.NewSource()

	sink, err := excel.New(cfg.ReportDir)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("init report sink: %w", err)
	}
	extractor := gemini.New(gemini.Config{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		RPS:     cfg.GeminiRPS,
		Burst:   cfg.GeminiBurst,
	}, executor)

	app := &App{
		Config:   cfg,
		Queue:    queue,
		Repo:     repo,
		IngestUC: usecase.NewIngestDocumentUseCase(repo, storage, queue),
		ReportUC: usecase.NewChequeReportUseCase(repo, storage, images, extractor, sink),
		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}

	// The OCR engine binds a Tesseract instance, so only the worker
	// constructs it.
	app.processUC = func() (ports.DocumentProcessor, func() error, error) {
		engine, err := tesseract.New(cfg.OCRLanguage, executor)
		if err != nil {
			return nil, nil, fmt.Errorf("init ocr engine: %w", err)
		}
		recognizer := usecase.NewRecognizeDocumentUseCase(images, engine, table, cfg.OCRTimeout)
		processUC := usecase.NewProcessDocumentUseCase(
			repo, storage, images, pdftext.New(storage), recognizer, table,
		)
		return processUC, engine.Close, nil
	}

	return app, nil
}

// NewProcessor builds the worker-side pipeline. The returned closer
// releases the OCR engine.
func (a *App) NewProcessor() (ports.DocumentProcessor, func() error, error) {
	return a.processUC()
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

func loadKeywordTable(path string) (*classify.Table, error) {
	if path == "" {
		return classify.DefaultTable(), nil
	}
	table, err := classify.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load keyword table: %w", err)
	}
	return table, nil
}
