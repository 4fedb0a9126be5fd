package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "abc_fatura.png", strings.NewReader("png bytes")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r, err := s.Open(ctx, "abc_fatura.png")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()
	data, _ := io.ReadAll(r)
	if string(data) != "png bytes" {
		t.Fatalf("read %q", data)
	}
}

func TestFileIntoCategoryMovesObject(t *testing.T) {
	base := t.TempDir()
	s, _ := New(base)
	ctx := context.Background()

	if err := s.Save(ctx, "abc_cek.png", strings.NewReader("cheque")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	filed, err := s.FileIntoCategory(ctx, "abc_cek.png", domain.CategoryCheque, "10000000146_15032024.png")
	if err != nil {
		t.Fatalf("FileIntoCategory() error = %v", err)
	}
	if filed != "cheque/10000000146_15032024.png" {
		t.Fatalf("filed = %s", filed)
	}
	if _, err := os.Stat(filepath.Join(base, "cheque", "10000000146_15032024.png")); err != nil {
		t.Fatalf("filed object missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "incoming", "abc_cek.png")); !os.IsNotExist(err) {
		t.Fatalf("source should be gone, stat err = %v", err)
	}

	r, err := s.Open(ctx, filed)
	if err != nil {
		t.Fatalf("Open(filed) error = %v", err)
	}
	r.Close()
}

func TestFileIntoCategorySentinelBuckets(t *testing.T) {
	base := t.TempDir()
	s, _ := New(base)
	ctx := context.Background()

	cases := []struct {
		category domain.Category
		wantDir  string
	}{
		{domain.CategoryUnclassified, "others"},
		{domain.CategoryProcessingError, "error_files"},
	}
	for _, tc := range cases {
		key := "k_" + tc.wantDir + ".png"
		if err := s.Save(ctx, key, strings.NewReader("x")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		filed, err := s.FileIntoCategory(ctx, key, tc.category, "belge.png")
		if err != nil {
			t.Fatalf("FileIntoCategory(%s) error = %v", tc.category, err)
		}
		if !strings.HasPrefix(filed, tc.wantDir+"/") {
			t.Fatalf("filed = %s, want prefix %s/", filed, tc.wantDir)
		}
	}
}

func TestFileIntoCategoryCollisionSuffix(t *testing.T) {
	base := t.TempDir()
	s, _ := New(base)
	ctx := context.Background()

	for i, want := range []string{
		"invoices/3982597914_15032024.png",
		"invoices/3982597914_15032024 (1).png",
		"invoices/3982597914_15032024 (2).png",
	} {
		key := "k" + string(rune('a'+i)) + ".png"
		if err := s.Save(ctx, key, strings.NewReader("x")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		filed, err := s.FileIntoCategory(ctx, key, domain.CategoryInvoices, "3982597914_15032024.png")
		if err != nil {
			t.Fatalf("FileIntoCategory() error = %v", err)
		}
		if filed != want {
			t.Fatalf("filed = %s, want %s", filed, want)
		}
	}
}

func TestFileIntoCategoryNormalizesFilename(t *testing.T) {
	base := t.TempDir()
	s, _ := New(base)
	ctx := context.Background()

	if err := s.Save(ctx, "k.png", strings.NewReader("x")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// Decomposed "ç" (c + combining cedilla) collapses to the single rune.
	filed, err := s.FileIntoCategory(ctx, "k.png", domain.CategoryCheque, "çek.png")
	if err != nil {
		t.Fatalf("FileIntoCategory() error = %v", err)
	}
	if filed != "cheque/çek.png" {
		t.Fatalf("filed = %q", filed)
	}
}
