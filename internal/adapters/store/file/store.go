package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/ports"
)

const (
	reportDirMode  = 0o755
	reportFileMode = 0o644
	tempPattern    = ".hb-report-*.tmp"
)

// Store keeps rendered reports under a root directory, one file per key.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.ReportStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

// Path resolves key to the file it is stored in.
func (s *Store) Path(key string) (string, error) {
	return s.pathForKey(key)
}

// Put replaces the report at key. Readers never observe a partial file.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, reportDirMode); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp report %q: %w", key, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report %q: %w", key, err)
	}
	if err := tmp.Chmod(reportFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod report %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace report %q: %w", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("report %q: %w", key, domain.ErrReportNotFound)
		}
		return nil, fmt.Errorf("read report %q: %w", key, err)
	}

	return data, nil
}

// Delete removes the report at key; a missing report is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete report %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("report key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || cleaned == "." {
		return "", fmt.Errorf("invalid report key %q", key)
	}

	return filepath.Join(s.root, cleaned), nil
}
