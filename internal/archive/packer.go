// Package archive bundles a directory of produced files into a single zip.
//
// The archive is a standard deflate zip openable by any general-purpose
// tool. The compression level trades build time against transport size and
// never affects the entry set or contents.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

// DefaultLevel balances CPU time against size reduction.
const DefaultLevel = 6

// Packer creates deflate zip archives at a fixed compression level.
type Packer struct {
	level int
}

// NewPacker creates a Packer with the given deflate level (1..9).
func NewPacker(level int) (*Packer, error) {
	if level < 1 || level > flate.BestCompression {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLevel, level)
	}
	return &Packer{level: level}, nil
}

// Level returns the configured compression level.
func (p *Packer) Level() int {
	return p.level
}

// Pack creates a new archive at archivePath containing every regular file
// under sourceDir, entry names relative to sourceDir. An empty source
// directory produces a valid empty archive.
//
// The archive is written to a temporary path and renamed into place on
// success, so an interrupted pack never leaves a partial file under the
// final name. Returns the final archive path.
func (p *Packer) Pack(sourceDir, archivePath string) (string, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return "", fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrNotDirectory, sourceDir)
	}

	tmp := archivePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}

	if err := p.writeAll(f, sourceDir); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("sync archive: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close archive: %w", err)
	}

	if err := os.Rename(tmp, archivePath); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize archive: %w", err)
	}
	return archivePath, nil
}

func (p *Packer) writeAll(w io.Writer, sourceDir string) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, p.level)
	})

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		return p.writeEntry(zw, path, filepath.ToSlash(rel), d)
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("pack %s: %w", sourceDir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip writer: %w", err)
	}
	return nil
}

func (p *Packer) writeEntry(zw *zip.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	}
	hdr.SetMode(info.Mode())

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}
