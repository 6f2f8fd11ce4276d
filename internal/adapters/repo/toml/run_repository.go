package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/ports"
)

const (
	runsPathKey    = "runs.path"
	runsConfigFile = "runs.toml"
	// DefaultRunHistory bounds the history file; older runs are dropped.
	DefaultRunHistory = 200
)

type RunRepository struct {
	path  string
	limit int
	mu    *sync.RWMutex
}

var _ ports.RunRepository = (*RunRepository)(nil)

func NewRunRepository(cfg *viper.Viper) (*RunRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(runsPathKey)
	if path == "" {
		configDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, runsConfigFile)
	}

	path, err := normalizeSettingsPath(path)
	if err != nil {
		return nil, err
	}

	limit := cfg.GetInt("runs.limit")
	if limit <= 0 {
		limit = DefaultRunHistory
	}

	return &RunRepository{path: path, limit: limit, mu: lockForPath(path)}, nil
}

// Save upserts run by id and trims the history to the newest entries.
func (r *RunRepository) Save(ctx context.Context, run domain.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toRunSchema(run)
	updated := false
	for i := range file.Runs {
		if file.Runs[i].ID == encoded.ID {
			file.Runs[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Runs = append(file.Runs, encoded)
	}
	if len(file.Runs) > r.limit {
		file.Runs = file.Runs[len(file.Runs)-r.limit:]
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("write runs file: %w", err)
	}
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id domain.RunID) (domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.RunRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.RunRecord{}, err
	}

	for _, entry := range file.Runs {
		if entry.ID == string(id) {
			return fromRunSchema(entry), nil
		}
	}

	return domain.RunRecord{}, domain.ErrRunNotFound
}

// Delete removes the run with id and returns it.
func (r *RunRepository) Delete(ctx context.Context, id domain.RunID) (domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.RunRecord{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.RunRecord{}, err
	}

	for i, entry := range file.Runs {
		if entry.ID != string(id) {
			continue
		}
		file.Runs = append(file.Runs[:i], file.Runs[i+1:]...)
		if err := writeTOMLFile(r.path, file); err != nil {
			return domain.RunRecord{}, fmt.Errorf("write runs file: %w", err)
		}
		return fromRunSchema(entry), nil
	}

	return domain.RunRecord{}, domain.ErrRunNotFound
}

// List returns runs oldest first.
func (r *RunRepository) List(ctx context.Context) ([]domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	runs := make([]domain.RunRecord, 0, len(file.Runs))
	for _, entry := range file.Runs {
		runs = append(runs, fromRunSchema(entry))
	}

	return runs, nil
}

func (r *RunRepository) readSchema() (runsFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := runsFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return runsFileSchema{}, fmt.Errorf("read runs file: %w", err)
	}

	var file runsFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return runsFileSchema{}, fmt.Errorf("decode runs file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return runsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
