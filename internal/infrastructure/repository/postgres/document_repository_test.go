package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*DocumentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &DocumentRepository{db: db}, mock, func() { _ = db.Close() }
}

func documentColumns() []string {
	return []string{
		"id", "filename", "mime_type", "storage_path", "filed_path", "category",
		"identifier_value", "identifier_kind", "attempts", "status", "error_message",
		"created_at", "updated_at",
	}
}

func TestGetByIDScansIdentifier(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows(documentColumns()).AddRow(
			"doc-1", "cek.png", "image/png", "abc_cek.png", "cheque/10000000146_15032024.png",
			"cheque", "10000000146", "personal", 2, "ready", "", now, now,
		))

	doc, err := repo.GetByID(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if doc.Category != domain.CategoryCheque {
		t.Fatalf("category = %s", doc.Category)
	}
	if doc.Identifier == nil || doc.Identifier.Value != "10000000146" || doc.Identifier.Kind != domain.IdentifierPersonal {
		t.Fatalf("identifier = %+v", doc.Identifier)
	}
	if doc.Attempts != 2 {
		t.Fatalf("attempts = %d", doc.Attempts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDWithoutIdentifier(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("doc-2").
		WillReturnRows(sqlmock.NewRows(documentColumns()).AddRow(
			"doc-2", "belge.png", "image/png", "abc_belge.png", nil,
			"unclassified", nil, nil, 5, "ready", "", now, now,
		))

	doc, err := repo.GetByID(context.Background(), "doc-2")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if doc.Identifier != nil {
		t.Fatalf("identifier = %+v, want nil", doc.Identifier)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", string(domain.StatusProcessing), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusProcessing, "")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveOutcomePersistsIdentifierAndAttempts(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("doc-1", "cheque", sqlmock.AnyArg(), sqlmock.AnyArg(), 2, "cheque/10000000146_15032024.png", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome := domain.ClassificationOutcome{
		Category:   domain.CategoryCheque,
		Identifier: &domain.NationalIdentifier{Value: "10000000146", Kind: domain.IdentifierPersonal},
		Attempts:   2,
	}
	if err := repo.SaveOutcome(context.Background(), "doc-1", outcome, "cheque/10000000146_15032024.png"); err != nil {
		t.Fatalf("SaveOutcome() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveOutcomeReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveOutcome(context.Background(), "missing", domain.ClassificationOutcome{Category: domain.CategoryUnclassified}, "")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListByCategory(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("cheque").
		WillReturnRows(sqlmock.NewRows(documentColumns()).
			AddRow("c-1", "cek1.png", "image/png", "a.png", "cheque/cek1.png", "cheque", nil, nil, 1, "ready", "", now, now).
			AddRow("c-2", "cek2.png", "image/png", "b.png", "cheque/cek2.png", "cheque", "3982597914", "tax", 3, "ready", "", now, now))

	docs, err := repo.ListByCategory(context.Background(), domain.CategoryCheque)
	if err != nil {
		t.Fatalf("ListByCategory() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d", len(docs))
	}
	if docs[1].Identifier == nil || docs[1].Identifier.Kind != domain.IdentifierTax {
		t.Fatalf("identifier = %+v", docs[1].Identifier)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
