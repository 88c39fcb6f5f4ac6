package ports

// Packer bundles a directory of already-produced files into one archive.
type Packer interface {
	// Pack creates a new archive at archivePath containing every regular
	// file under sourceDir, entry names relative to sourceDir. Returns
	// the final archive path.
	//
	// The archive must become visible at archivePath only once complete;
	// an interrupted pack must not leave a partial file under that name.
	Pack(sourceDir, archivePath string) (string, error)
}
