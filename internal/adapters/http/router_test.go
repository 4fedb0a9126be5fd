package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/observability/metrics"
)

type ingestorFake struct {
	doc *domain.Document
	err error

	gotFilename string
	gotMime     string
}

func (f *ingestorFake) Upload(_ context.Context, filename, mimeType string, body io.Reader) (*domain.Document, error) {
	f.gotFilename = filename
	f.gotMime = mimeType
	_, _ = io.Copy(io.Discard, body)
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type readerFake struct {
	doc *domain.Document
	err error
}

func (f *readerFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type reportsFake struct {
	report *domain.ChequeReport
	err    error
}

func (f *reportsFake) BuildReport(context.Context) (*domain.ChequeReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadDocumentAccepted(t *testing.T) {
	ingestor := &ingestorFake{doc: &domain.Document{ID: "doc-1", Filename: "fatura.png", Status: domain.StatusUploaded}}
	rt := NewRouter(ingestor, &readerFake{}, &reportsFake{}, nil)
	handler := rt.Handler()

	body, contentType := multipartBody(t, "file", "fatura.png", "png bytes")
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", res.Code, res.Body.String())
	}
	if ingestor.gotFilename != "fatura.png" {
		t.Fatalf("filename = %s", ingestor.gotFilename)
	}
	var doc domain.Document
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.ID != "doc-1" || doc.Status != domain.StatusUploaded {
		t.Fatalf("doc = %+v", doc)
	}
	if res.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestUploadDocumentMissingFile(t *testing.T) {
	rt := NewRouter(&ingestorFake{}, &readerFake{}, &reportsFake{}, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewReader(nil))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestUploadDocumentTemporaryFailureMapsTo503(t *testing.T) {
	ingestor := &ingestorFake{err: domain.WrapError(domain.ErrTemporary, "publish", errors.New("nats down"))}
	rt := NewRouter(ingestor, &readerFake{}, &reportsFake{}, nil)
	handler := rt.Handler()

	body, contentType := multipartBody(t, "file", "fatura.png", "x")
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestGetDocumentByID(t *testing.T) {
	reader := &readerFake{doc: &domain.Document{
		ID:       "doc-1",
		Category: domain.CategoryCheque,
		Identifier: &domain.NationalIdentifier{
			Value: "10000000146",
			Kind:  domain.IdentifierPersonal,
		},
		Status: domain.StatusReady,
	}}
	rt := NewRouter(&ingestorFake{}, reader, &reportsFake{}, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
	var doc domain.Document
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Category != domain.CategoryCheque || doc.Identifier == nil {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestGetDocumentByIDNotFound(t *testing.T) {
	reader := &readerFake{err: domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New("id=missing"))}
	rt := NewRouter(&ingestorFake{}, reader, &reportsFake{}, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestBuildChequeReport(t *testing.T) {
	reports := &reportsFake{report: &domain.ChequeReport{
		Total:      2,
		Extracted:  2,
		ReportPath: "reports/cheque_report_15032024_143000.xlsx",
	}}
	rt := NewRouter(&ingestorFake{}, &readerFake{}, reports, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/cheques", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
	var report domain.ChequeReport
	if err := json.NewDecoder(res.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Total != 2 || report.ReportPath == "" {
		t.Fatalf("report = %+v", report)
	}
}

func TestBuildChequeReportMethodNotAllowed(t *testing.T) {
	rt := NewRouter(&ingestorFake{}, &readerFake{}, &reportsFake{}, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/cheques", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestHealthz(t *testing.T) {
	rt := NewRouter(&ingestorFake{}, &readerFake{}, &reportsFake{}, nil)
	handler := rt.Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	rt := NewRouter(&ingestorFake{}, &readerFake{}, &reportsFake{},
		metrics.NewHTTPServerMetrics(serviceName),
		WithTrafficControl(1, 1, 0),
	)
	handler := rt.Handler()

	req1 := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res1 := httptest.NewRecorder()
	handler.ServeHTTP(res1, req1)
	if res1.Code != http.StatusOK {
		t.Fatalf("first request expected 200, got %d", res1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res2 := httptest.NewRecorder()
	handler.ServeHTTP(res2, req2)
	if res2.Code != http.StatusTooManyRequests {
		t.Fatalf("second request expected 429, got %d", res2.Code)
	}
	if res2.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header for 429 response")
	}
}

func TestBackpressureMiddlewareReturns503WhenSaturated(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan int, 1)

	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.WriteHeader(http.StatusNoContent)
	})
	handler := backpressureMiddleware(base, 1, 20*time.Millisecond)

	go func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		done <- res.Code
	}()

	<-started

	req2 := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res2 := httptest.NewRecorder()
	handler.ServeHTTP(res2, req2)
	if res2.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for saturated gate, got %d", res2.Code)
	}

	close(release)

	select {
	case code := <-done:
		if code != http.StatusNoContent {
			t.Fatalf("first request expected 204, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for first request")
	}
}
