package slides

import (
	"os"
	"path/filepath"
	"testing"

	"lectureiq/internal/logger"
)

func TestExtractTextMissingFile(t *testing.T) {
	e := New(logger.New("error"))
	if _, err := e.ExtractText("does/not/exist.pdf"); err == nil {
		t.Fatal("ExtractText() should fail for missing file")
	}
}

func TestExtractTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	e := New(logger.New("error"))
	if _, err := e.ExtractText(path); err == nil {
		t.Fatal("ExtractText() should fail for a non-PDF file")
	}
}
