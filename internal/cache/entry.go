package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// fileNamePattern matches the on-disk naming scheme for cached artifacts:
// <name>#<version>#<source>. Name and version carry the restricted character
// set; the source token is whatever remains after the second separator.
var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+#[A-Za-z0-9._-]+#`)

// fieldPattern constrains the name and version fields when composing a file name.
var fieldPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Entry is a read-only view of one cached artifact, parsed from its file
// name. It stays valid only while the backing file exists; Size reads
// whatever is on disk at call time.
type Entry struct {
	name    string
	version string
	source  string
	path    string
}

// newEntry parses a file name that already matched fileNamePattern. Callers
// must pre-filter; constructing from an unchecked name is a programming error.
func newEntry(dir, fileName string) Entry {
	parts := strings.SplitN(fileName, "#", 3)
	if len(parts) != 3 {
		panic(fmt.Sprintf("cache: entry name %q does not follow <name>#<version>#<source>", fileName))
	}
	return Entry{
		name:    parts[0],
		version: parts[1],
		source:  parts[2],
		path:    filepath.Join(dir, fileName),
	}
}

// Name returns the package the artifact was downloaded for.
func (e Entry) Name() string { return e.name }

// Version returns the package version encoded in the file name.
func (e Entry) Version() string { return e.version }

// Source returns the URL-derived token recorded after the second separator.
// It identifies where the artifact came from; nothing reverses it back into
// a URL.
func (e Entry) Source() string { return e.source }

// Path returns the location of the backing file.
func (e Entry) Path() string { return e.path }

// Size stats the backing file. It fails once the file has been removed.
func (e Entry) Size() (int64, error) {
	info, err := os.Stat(e.path)
	if err != nil {
		return 0, fmt.Errorf("cache: stat %s: %w", e.path, err)
	}
	return info.Size(), nil
}

// FileName composes the canonical on-disk name for a download. Name and
// version must stay inside the restricted character set so the name parses
// back into the same fields; the source token is unrestricted.
func FileName(name, version, source string) (string, error) {
	if !fieldPattern.MatchString(name) {
		return "", fmt.Errorf("cache: invalid package name %q", name)
	}
	if !fieldPattern.MatchString(version) {
		return "", fmt.Errorf("cache: invalid version %q", version)
	}
	return name + "#" + version + "#" + source, nil
}
