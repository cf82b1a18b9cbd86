package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ladle/internal/logging"
)

const tempSuffix = ".download"

// TempPath returns the staging sibling for a final destination path. The
// suffix goes on the whole path, after any extension. Downloads write there
// first and rename onto the final path once complete.
func TempPath(path string) string {
	return path + tempSuffix
}

// Manager owns one cache directory. Every operation re-reads the directory;
// no state is kept between calls, and mutating calls assume a single writer.
type Manager struct {
	workingDir string
	logger     *slog.Logger
}

// NewManager returns a manager rooted at workingDir. The directory must
// already exist; the manager never creates it.
func NewManager(workingDir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	if abs, err := filepath.Abs(workingDir); err == nil {
		workingDir = abs
	}
	return &Manager{
		workingDir: workingDir,
		logger:     logging.NewComponentLogger(logger, "cache"),
	}
}

// Dir returns the cache directory the manager operates on.
func (m *Manager) Dir() string {
	return m.workingDir
}

// List returns every artifact in the cache directory whose name follows the
// naming scheme. Non-matching names are ignored. Order follows the directory
// read; callers must not rely on it.
func (m *Manager) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(m.workingDir)
	if err != nil {
		if len(dirEntries) == 0 {
			return nil, fmt.Errorf("cache: read %s: %w", m.workingDir, err)
		}
		m.logger.Warn("partial cache directory listing",
			logging.String("directory", m.workingDir),
			logging.Error(err),
			logging.String(logging.FieldEventType, "cache_scan_partial"),
			logging.String(logging.FieldErrorHint, "check directory permissions; unreadable entries were skipped"))
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !fileNamePattern.MatchString(de.Name()) {
			continue
		}
		entries = append(entries, newEntry(m.workingDir, de.Name()))
	}
	return entries, nil
}

// Matching returns the cached artifacts whose package name starts with
// pattern. A bare "*" matches everything; otherwise a trailing "*" is
// stripped and the remainder is a case-sensitive prefix, so an empty prefix
// also matches everything. No other wildcard positions exist.
func (m *Manager) Matching(pattern string) ([]Entry, error) {
	all, err := m.List()
	if err != nil || pattern == "*" {
		return all, err
	}
	prefix := strings.TrimRight(pattern, "*")
	matched := make([]Entry, 0, len(all))
	for _, entry := range all {
		if strings.HasPrefix(entry.Name(), prefix) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Remove deletes the cached artifacts matching pattern. The full-wipe
// pattern "*" empties the whole directory instead. Deletion stops at the
// first failure and returns it.
func (m *Manager) Remove(pattern string) error {
	if pattern == "*" {
		return m.RemoveAll()
	}
	entries, err := m.Matching(pattern)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.Remove(entry.Path()); err != nil {
			return fmt.Errorf("cache: remove %s: %w", entry.Path(), err)
		}
		m.logger.Debug("removed cached artifact",
			logging.String("package", entry.Name()),
			logging.String("version", entry.Version()))
	}
	return nil
}

// RemoveAll deletes everything under the cache directory, whether or not it
// follows the artifact naming scheme. The directory itself stays.
func (m *Manager) RemoveAll() error {
	dirEntries, err := os.ReadDir(m.workingDir)
	if err != nil {
		return fmt.Errorf("cache: read %s: %w", m.workingDir, err)
	}
	for _, de := range dirEntries {
		path := filepath.Join(m.workingDir, de.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("cache: remove %s: %w", path, err)
		}
	}
	m.logger.Debug("emptied cache directory", logging.String("directory", m.workingDir))
	return nil
}

// Stage prepares the destination for a new download: it deletes any stale
// file at the final path and at its staging sibling, then returns the final
// path. Leftovers from an interrupted attempt would otherwise be mistaken
// for, or corrupt, the new download. The caller writes to TempPath of the
// returned path and renames only after the transfer completed and verified.
func (m *Manager) Stage(fileName string) (string, error) {
	path := filepath.Join(m.workingDir, fileName)
	for _, stale := range []string{path, TempPath(path)} {
		if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("cache: clear stale %s: %w", stale, err)
		}
	}
	return path, nil
}
