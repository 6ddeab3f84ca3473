package slides

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"lectureiq/internal/logger"
)

type implExtractor struct {
	logger logger.Logger
}

// New creates a PDF-backed slide text extractor.
func New(log logger.Logger) Extractor {
	return &implExtractor{logger: log}
}

// ExtractText concatenates the text of every page in document order, with no
// separator between pages. Either the full concatenation is returned or an
// error; there is no partial result.
func (e *implExtractor) ExtractText(documentPath string) (text string, err error) {
	// The pdf package panics on some malformed files; fold that into the
	// error return so the stage contract holds.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(documentPath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	ctx := context.Background()
	total := reader.NumPage()
	e.logger.Info(ctx, "Extracting text from PDF with %d pages", total)

	var b strings.Builder
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		b.WriteString(pageText)
	}

	text = b.String()
	if text == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}

	e.logger.Info(ctx, "PDF text extraction complete: %d characters", len(text))
	return text, nil
}
