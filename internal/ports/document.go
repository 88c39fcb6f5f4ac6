package ports

// Document is an open paged document.
//
// Implementations hold whatever state the underlying reader needs; a
// Document is not safe for concurrent use and must be closed when done.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the plain text of the given 1-based page.
	// Extraction failures are reported as errors; callers may treat a
	// failed page as having no text rather than aborting.
	PageText(page int) (string, error)

	// SerializePage writes the given 1-based page as a standalone,
	// independently valid document.
	//
	// When compress is true the writer removes unreferenced objects,
	// deflates content streams and emits a compact, web-consumable
	// layout. When false the page bytes are emitted with no
	// post-processing. Writer failures propagate unchanged.
	SerializePage(page int, compress bool) ([]byte, error)

	// Serialize writes the whole document, applying the same compression
	// treatment as SerializePage.
	Serialize(compress bool) ([]byte, error)

	// Close releases resources held by the document.
	Close() error
}

// DocumentOpener opens paged documents from the file system.
type DocumentOpener interface {
	Open(path string) (Document, error)
}
