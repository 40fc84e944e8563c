// Package extraction extracts plain text from uploaded resume PDFs.
package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MinTextLength is the minimum number of extracted characters for a resume
// to be considered analyzable. Image-only or encrypted PDFs often parse
// structurally but yield almost no text.
const MinTextLength = 50

// Extractor extracts text from PDF documents, page by page.
type Extractor struct {
	minLength int
}

// NewExtractor creates an Extractor with the default text-length threshold.
func NewExtractor() *Extractor {
	return &Extractor{minLength: MinTextLength}
}

// Extract parses data as a PDF and returns the concatenated page text in
// page order, pages separated by a blank line, trimmed. It returns an
// *ExtractionError when the bytes are not a parseable PDF or when the
// extracted text is shorter than the minimum threshold.
func (e *Extractor) Extract(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Reason: "not a valid PDF", Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Reason: "not a valid PDF", Err: err}
	}

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Reason: fmt.Sprintf("failed to read page %d", pageNum), Err: err}
		}
		pages = append(pages, strings.TrimSpace(pageText))
	}

	text = strings.TrimSpace(strings.Join(pages, "\n\n"))
	if len(text) < e.minLength {
		return "", &ExtractionError{
			Reason: fmt.Sprintf("extracted only %d characters (minimum %d); the file may be image-based or encrypted", len(text), e.minLength),
		}
	}

	return text, nil
}
