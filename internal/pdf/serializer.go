package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

// readConf returns a configuration for parsing and plain writes.
// Relaxed validation accepts the slightly out-of-spec files scanners emit.
func readConf() *model.Configuration {
	c := model.NewDefaultConfiguration()
	c.ValidationMode = model.ValidationRelaxed
	c.WriteObjectStream = false
	c.WriteXRefStream = false
	return c
}

// webConf returns a configuration for the compressed, web-consumable
// layout: object streams and a cross-reference stream keep the structural
// overhead small and let viewers locate the first page cheaply.
func webConf() *model.Configuration {
	c := model.NewDefaultConfiguration()
	c.ValidationMode = model.ValidationRelaxed
	c.WriteObjectStream = true
	c.WriteXRefStream = true
	return c
}

// SerializePage writes the given 1-based page as a standalone PDF.
//
// With compress set, the page is rewritten with unreferenced objects
// removed, content streams deflated and the web-consumable layout enabled.
// If that layout is not supported for the document, the plain optimized
// write is used instead. Without compress, the extracted page bytes are
// returned as the writer produced them, no post-processing.
func (d *Document) SerializePage(page int, compress bool) ([]byte, error) {
	if page < 1 || page > d.pages {
		return nil, fmt.Errorf("%w: %d of %d", domain.ErrPageOutOfRange, page, d.pages)
	}

	var trimmed bytes.Buffer
	selected := []string{strconv.Itoa(page)}
	if err := api.Trim(bytes.NewReader(d.data), &trimmed, selected, readConf()); err != nil {
		return nil, fmt.Errorf("extract page %d of %s: %w", page, d.path, err)
	}

	if !compress {
		return trimmed.Bytes(), nil
	}
	return optimize(trimmed.Bytes(), fmt.Sprintf("page %d of %s", page, d.path))
}

// Serialize writes the whole document. With compress set it is rewritten
// through the optimizer; without, the source bytes are returned untouched.
func (d *Document) Serialize(compress bool) ([]byte, error) {
	if !compress {
		out := make([]byte, len(d.data))
		copy(out, d.data)
		return out, nil
	}
	return optimize(d.data, d.path)
}

func optimize(data []byte, what string) ([]byte, error) {
	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &out, webConf()); err == nil {
		return out.Bytes(), nil
	}

	// Some documents reject the web-optimized layout; fall back to the
	// plain optimized write before giving up.
	out.Reset()
	if err := api.Optimize(bytes.NewReader(data), &out, readConf()); err != nil {
		return nil, fmt.Errorf("optimize %s: %w", what, err)
	}
	return out.Bytes(), nil
}
