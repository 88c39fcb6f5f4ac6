package job

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

const manifestName = "summary.json"

// ManifestPath returns the manifest location inside a job directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, manifestName)
}

// WriteManifest persists the job summary into its directory atomically:
// the JSON is written to a temp file and renamed into place, so a crash
// never leaves a truncated manifest under the final name.
func WriteManifest(dir string, s domain.Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	path := ManifestPath(dir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadManifest loads a job summary from its directory.
// Returns an empty summary and nil error when no manifest exists.
func ReadManifest(dir string) (domain.Summary, error) {
	data, err := os.ReadFile(ManifestPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Summary{}, nil
		}
		return domain.Summary{}, err
	}

	var s domain.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Summary{}, err
	}
	return s, nil
}
