package pipeline

import (
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/heitorfelix/scanprep/internal/imaging"
)

// ArtifactStore persists diagnostic snapshots of pipeline stages as PNG
// files under a single directory.
//
// File names follow {timestamp}_{label}.png with second-resolution
// timestamps, so two runs starting within the same second overwrite each
// other's artifacts. That is a known, accepted limitation of the naming
// scheme; artifacts are debugging aids, not records. Written files are
// never mutated or deleted by the store.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates the artifact directory if it does not exist
// and returns a store rooted there.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, prepErrors.NewWithCause(ErrArtifactWrite, err).
			WithDetail("dir", dir)
	}
	return &ArtifactStore{dir: dir}, nil
}

// Dir returns the directory artifacts are written under.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// Save writes one stage snapshot and returns the path it was written to.
func (s *ArtifactStore) Save(stamp, label string, img image.Image) (string, error) {
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", prepErrors.NewWithCause(ErrArtifactWrite, err).
			WithDetail("label", label)
	}

	path := filepath.Join(s.dir, stamp+"_"+label+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", prepErrors.NewWithCause(ErrArtifactWrite, err).
			WithDetail("label", label).
			WithDetail("path", path)
	}
	return path, nil
}

// Timestamp formats a run timestamp the way artifact filenames expect
// (YYYYMMDD_HHMMSS).
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
