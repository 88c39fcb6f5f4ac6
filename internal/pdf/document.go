// Package pdf adapts the PDF libraries behind the ports.Document interface.
//
// pdfcpu does the writing: single-page extraction and the optimized
// (garbage-collected, stream-deflated, web-consumable) serialization.
// ledongthuc/pdf does per-page plain-text extraction for page naming.
package pdf

import (
	"bytes"
	"fmt"
	"os"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/internal/ports"
)

func init() {
	// Keep pdfcpu from reading or creating an on-disk config dir.
	model.ConfigPath = "disable"
}

// Document is an open paged PDF. The source bytes are held in memory for
// the lifetime of the document; it is not safe for concurrent use.
type Document struct {
	path  string
	data  []byte
	pages int
	text  *lpdf.Reader
}

// Opener opens PDF documents from the file system.
type Opener struct{}

// Open implements ports.DocumentOpener.
func (Opener) Open(path string) (ports.Document, error) {
	return Open(path)
}

// Open reads and validates the PDF at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pages, err := api.PageCount(bytes.NewReader(data), readConf())
	if err != nil {
		return nil, fmt.Errorf("page count %s: %w", path, err)
	}

	text, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Text extraction is best effort: a document we can split but
		// not read text from still processes, with manual page names.
		text = nil
	}

	return &Document{path: path, data: data, pages: pages, text: text}, nil
}

// Path returns the source file path.
func (d *Document) Path() string {
	return d.path
}

// Size returns the source file size in bytes.
func (d *Document) Size() int64 {
	return int64(len(d.data))
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// PageText returns the plain text of the given 1-based page.
func (d *Document) PageText(page int) (text string, err error) {
	if page < 1 || page > d.pages {
		return "", fmt.Errorf("%w: %d of %d", domain.ErrPageOutOfRange, page, d.pages)
	}
	if d.text == nil {
		return "", fmt.Errorf("no text reader for %s", d.path)
	}

	// The extraction library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extract text from page %d: %v", page, r)
		}
	}()

	p := d.text.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

// Close releases resources held by the document.
func (d *Document) Close() error {
	d.data = nil
	d.text = nil
	return nil
}
