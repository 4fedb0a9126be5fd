package excel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

const sheetName = "Cheques"

var header = []string{
	"File Name", "IBAN", "Check Number", "Branch Code", "Account Number",
	"Customer ID", "Bank Code", "MICR Code", "Check Amount", "Error",
}

// Sink writes a cheque report as an XLSX workbook plus a JSON sidecar
// with the same records. Returns the workbook path.
type Sink struct {
	dir string
}

func New(dir string) (*Sink, error) {
	if dir == "" {
		dir = "./data/reports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &Sink{dir: dir}, nil
}

func (s *Sink) Write(ctx context.Context, report *domain.ChequeReport, generatedAt time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stamp := generatedAt.Format("02012006_150405")
	workbookPath := filepath.Join(s.dir, fmt.Sprintf("cheque_report_%s.xlsx", stamp))
	jsonPath := filepath.Join(s.dir, fmt.Sprintf("cheque_report_%s.json", stamp))

	if err := s.writeWorkbook(workbookPath, report); err != nil {
		return "", err
	}
	if err := s.writeJSON(jsonPath, report, generatedAt); err != nil {
		return "", err
	}
	return workbookPath, nil
}

func (s *Sink) writeWorkbook(path string, report *domain.ChequeReport) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, record := range report.Records {
		row := []any{
			record.Filename,
			deref(record.Fields.IBAN),
			deref(record.Fields.CheckNumber),
			deref(record.Fields.BranchCode),
			deref(record.Fields.AccountNumber),
			deref(record.Fields.CustomerIDNumber),
			deref(record.Fields.BankCode),
			deref(record.Fields.MICRCode),
			deref(record.Fields.CheckAmount),
			record.Error,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (s *Sink) writeJSON(path string, report *domain.ChequeReport, generatedAt time.Time) error {
	type jsonRecord struct {
		FileName         string  `json:"fileName"`
		IBAN             *string `json:"iban"`
		CheckNumber      *string `json:"checkNumber"`
		BranchCode       *string `json:"branchCode"`
		AccountNumber    *string `json:"accountNumber"`
		CustomerIDNumber *string `json:"customerIdNumber"`
		BankCode         *string `json:"bankCode"`
		MICRCode         *string `json:"micrCode"`
		CheckAmount      *string `json:"checkAmount"`
		Error            string  `json:"error,omitempty"`
	}

	payload := struct {
		GeneratedAt time.Time    `json:"generatedAt"`
		Total       int          `json:"total"`
		Extracted   int          `json:"extracted"`
		Failed      int          `json:"failed"`
		Records     []jsonRecord `json:"records"`
	}{
		GeneratedAt: generatedAt,
		Total:       report.Total,
		Extracted:   report.Extracted,
		Failed:      report.Failed,
		Records:     make([]jsonRecord, 0, len(report.Records)),
	}
	for _, record := range report.Records {
		payload.Records = append(payload.Records, jsonRecord{
			FileName:         record.Filename,
			IBAN:             record.Fields.IBAN,
			CheckNumber:      record.Fields.CheckNumber,
			BranchCode:       record.Fields.BranchCode,
			AccountNumber:    record.Fields.AccountNumber,
			CustomerIDNumber: record.Fields.CustomerIDNumber,
			BankCode:         record.Fields.BankCode,
			MICRCode:         record.Fields.MICRCode,
			CheckAmount:      record.Fields.CheckAmount,
			Error:            record.Error,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report json: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
