// Package extract turns uploaded documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"studybyte/internal/domain"

	"github.com/ledongthuc/pdf"
)

var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".json": true,
}

var (
	textOperatorRe = regexp.MustCompile(`BT\s+(.*?)\s+ET`)
	nonTextRe      = regexp.MustCompile(`[^\w\s.,!?;:()\-]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Extension returns the lowercased extension of filename including the dot
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// FromBytes extracts text from a binary upload. PDFs go through the PDF
// reader first and fall back to scraping text operators from the raw bytes.
func FromBytes(filename string, data []byte) (string, error) {
	ext := Extension(filename)
	switch {
	case ext == ".pdf":
		text, err := pdfText(data)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if scraped, ok := scrapeTextOperators(string(data)); ok {
			return scraped, nil
		}
		if err != nil {
			return "", fmt.Errorf("pdf extraction failed: %w", err)
		}
		return "", domain.NewEmptyContentError()
	case textExtensions[ext]:
		if !utf8.Valid(data) {
			return "", domain.NewInvalidInputError(fmt.Sprintf("%s is not valid UTF-8 text", filename))
		}
		return string(data), nil
	default:
		return "", domain.NewUnsupportedFileTypeError(ext)
	}
}

// FromString handles content already delivered as text. For a .pdf name the
// string is treated as raw PDF source and its text operators are scraped; if
// none are found the string is returned unchanged.
func FromString(filename, content string) string {
	if Extension(filename) != ".pdf" {
		return content
	}
	if scraped, ok := scrapeTextOperators(content); ok {
		return scraped
	}
	return content
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return collapseWhitespace(string(b)), nil
}

// scrapeTextOperators joins every BT ... ET block on a line and strips
// everything except word characters and basic punctuation.
func scrapeTextOperators(raw string) (string, bool) {
	blocks := textOperatorRe.FindAllString(raw, -1)
	if len(blocks) == 0 {
		return "", false
	}
	text := nonTextRe.ReplaceAllString(strings.Join(blocks, " "), " ")
	text = collapseWhitespace(text)
	return text, text != ""
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
