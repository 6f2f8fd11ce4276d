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
	configName         = "config"
	configType         = "toml"
	settingsPathKey    = "settings.path"
	settingsFileMode   = 0o600
	settingsDirMode    = 0o700
	settingsConfigDir  = ".honeybible"
	settingsConfigFile = "settings.toml"
	tempFilePattern    = ".hb-*.toml.tmp"
)

type Repository struct {
	settingsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

// ConfigDir is the directory holding config.toml and the default settings
// file.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, settingsConfigDir), nil
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(settingsPathKey, filepath.Join(configDir, settingsConfigFile))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	settingsPath := cfg.GetString(settingsPathKey)
	if settingsPath == "" {
		return nil, errors.New("settings path is empty")
	}
	settingsPath, err = normalizeSettingsPath(settingsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{settingsPath: settingsPath, mu: lockForPath(settingsPath)}, nil
}

func (r *Repository) Path() string {
	return r.settingsPath
}

// Load returns the stored settings, or the built-in ones when no file exists.
func (r *Repository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Settings{}, err
	}

	settings, err := fromSchema(file)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings file: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("validate settings file: %w", err)
	}

	return settings, nil
}

func (r *Repository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(settings))
}

// Exists reports whether the settings file is present on disk.
func (r *Repository) Exists() (bool, error) {
	_, err := os.Stat(r.settingsPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat settings file: %w", err)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read settings file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode settings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSettingsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := writeTOMLFile(r.settingsPath, file); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// MarshalSettings renders settings in the settings file format.
func MarshalSettings(settings domain.Settings) ([]byte, error) {
	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
