package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/codepad/internal/logger"
)

// FileName is the settings file inside the application config directory.
const FileName = "settings.toml"

// FileMode keeps the file private; it stores API credentials.
const FileMode fs.FileMode = 0o600

// Store loads and saves the preference set.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// DefaultPath returns <user config dir>/codepad/settings.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "codepad", FileName), nil
}

// FileStore persists settings as TOML.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file yields the defaults; keys absent from
// the file keep their default values.
func (s *FileStore) Load() (Settings, error) {
	st := Defaults()
	_, err := toml.DecodeFile(s.path, &st)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.DebugTagf("settings", "No settings file at %s, using defaults", s.path)
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("loading settings %s: %w", s.path, err)
	}
	return st.Clamp(), nil
}

// Save writes the clamped settings, creating the directory if needed.
func (s *FileStore) Save(st Settings) error {
	st = st.Clamp()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), FileMode); err != nil {
		return fmt.Errorf("saving settings %s: %w", s.path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, FileMode); err != nil {
		return fmt.Errorf("securing settings %s: %w", s.path, err)
	}
	logger.DebugTagf("settings", "Saved settings to %s", s.path)
	return nil
}

// MemoryStore keeps settings in memory. Used when no config dir is
// available and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	saved *Settings
	// SaveErr, when set, is returned by Save.
	SaveErr error
}

// Load returns the last saved settings or the defaults.
func (m *MemoryStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return Defaults(), nil
	}
	return *m.saved, nil
}

// Save records st.
func (m *MemoryStore) Save(st Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	st = st.Clamp()
	m.saved = &st
	return nil
}
