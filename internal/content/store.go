package content

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/asharhb/document-processor/constants"
)

// Store keeps uploaded raw content on the local filesystem, one file per
// document, named by content hash. A stored file is owned exclusively by the
// document that references it and is removed when that document is deleted.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		dir = "./content"
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Put writes raw upload bytes and returns the stored path. The name carries
// the content hash plus the original extension so extractors can sniff the
// format from the path alone.
func (s *Store) Put(data []byte, filename string) (string, error) {
	sum := sha256.Sum256(data)
	ext := constants.NormalizeExt(filepath.Ext(filename))
	name := hex.EncodeToString(sum[:])
	if ext != "" {
		name = name + "." + ext
	}
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("failed to write content file", "path", path, "error", err)
		return "", fmt.Errorf("write content: %w", err)
	}
	s.logger.Debug("content stored", "path", path, "bytes", len(data))
	return path, nil
}

// Read returns the raw bytes for a stored path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

// Remove deletes a stored file. A missing file is not an error; the record
// owning it may already have released it.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove content file", "path", path, "error", err)
		return err
	}
	return nil
}
