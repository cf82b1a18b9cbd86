package cache

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeCacheFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func listedNames(t *testing.T, m *Manager) []string {
	t.Helper()
	entries, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, filepath.Base(entry.Path()))
	}
	sort.Strings(names)
	return names
}

func matchedNames(t *testing.T, m *Manager, pattern string) []string {
	t.Helper()
	entries, err := m.Matching(pattern)
	if err != nil {
		t.Fatalf("Matching(%q) failed: %v", pattern, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, filepath.Base(entry.Path()))
	}
	sort.Strings(names)
	return names
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestListSkipsNamesOutsideTheScheme(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"curl#8.8.0#https_curl.se_curl-8.8.0.tar.gz",
		"wget#1.21.4#https_ftp.gnu.org_gnu_wget_wget-1.21.4.tar.gz",
	} {
		writeCacheFile(t, dir, name)
	}
	for _, name := range []string{
		"README.md",
		"curl#8.8.0",
		"#1.0#nameless",
		"has space#1.0#x",
		".hidden",
	} {
		writeCacheFile(t, dir, name)
	}

	got := listedNames(t, NewManager(dir, nil))
	want := []string{
		"curl#8.8.0#https_curl.se_curl-8.8.0.tar.gz",
		"wget#1.21.4#https_ftp.gnu.org_gnu_wget_wget-1.21.4.tar.gz",
	}
	if !equalNames(got, want) {
		t.Errorf("listed names mismatch: got %v, want %v", got, want)
	}
}

func TestListFailsWhenDirectoryUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	if _, err := NewManager(missing, nil).List(); err == nil {
		t.Fatal("expected error for missing cache directory")
	}
}

func TestMatchingStarReturnsEverything(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#8.8.0#a")
	writeCacheFile(t, dir, "wget#1.21.4#b")
	m := NewManager(dir, nil)

	all := listedNames(t, m)
	for _, pattern := range []string{"*", ""} {
		if got := matchedNames(t, m, pattern); !equalNames(got, all) {
			t.Errorf("Matching(%q) = %v, want %v", pattern, got, all)
		}
	}
}

func TestMatchingUsesNamePrefix(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#7.88#curl.tar.gz")
	writeCacheFile(t, dir, "curl#7.86#curl.tar.gz")
	writeCacheFile(t, dir, "curlie#1.7#curlie.tar.gz")
	writeCacheFile(t, dir, "wget#1.21#wget.tar.gz")
	m := NewManager(dir, nil)

	cases := []struct {
		pattern string
		want    []string
	}{
		{"curl", []string{"curl#7.86#curl.tar.gz", "curl#7.88#curl.tar.gz", "curlie#1.7#curlie.tar.gz"}},
		{"curl*", []string{"curl#7.86#curl.tar.gz", "curl#7.88#curl.tar.gz", "curlie#1.7#curlie.tar.gz"}},
		{"curlie", []string{"curlie#1.7#curlie.tar.gz"}},
		{"wget", []string{"wget#1.21#wget.tar.gz"}},
		{"WGET", nil},
		{"nothing", nil},
	}
	for _, tc := range cases {
		got := matchedNames(t, m, tc.pattern)
		wantSorted := append([]string(nil), tc.want...)
		sort.Strings(wantSorted)
		if !equalNames(got, wantSorted) {
			t.Errorf("Matching(%q) = %v, want %v", tc.pattern, got, wantSorted)
		}
	}
}

func TestRemoveDeletesOnlyMatches(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#7.88#curl.tar.gz")
	writeCacheFile(t, dir, "curl#7.86#curl.tar.gz")
	writeCacheFile(t, dir, "wget#1.21#wget.tar.gz")
	writeCacheFile(t, dir, "README.md")
	m := NewManager(dir, nil)

	if err := m.Remove("curl"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	got := listedNames(t, m)
	if !equalNames(got, []string{"wget#1.21#wget.tar.gz"}) {
		t.Errorf("remaining entries mismatch: got %v", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
		t.Errorf("unrelated file should survive a filtered remove: %v", err)
	}
}

func TestRemoveAllEmptiesDirectoryButKeepsIt(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#7.88#curl.tar.gz")
	writeCacheFile(t, dir, "README.md")
	if err := os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeCacheFile(t, filepath.Join(dir, "nested"), "leftover.bin")
	m := NewManager(dir, nil)

	if err := m.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}

	remaining, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache directory should still exist: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected empty directory, found %d entries", len(remaining))
	}
}

func TestRemoveStarMeansFullWipe(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#7.88#curl.tar.gz")
	writeCacheFile(t, dir, "not-a-cache-entry.txt")
	m := NewManager(dir, nil)

	if err := m.Remove("*"); err != nil {
		t.Fatalf("Remove(*) failed: %v", err)
	}

	remaining, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("Remove(*) should clear unrelated files too, found %d entries", len(remaining))
	}
}

func TestStageReturnsDestinationAndClearsStaleFiles(t *testing.T) {
	dir := t.TempDir()
	const fileName = "7zip#24.08#https_www.7-zip.org_a_7z2408-x64.msi"
	writeCacheFile(t, dir, fileName)
	writeCacheFile(t, dir, fileName+".download")
	m := NewManager(dir, nil)

	path, err := m.Stage(fileName)
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	if path != filepath.Join(dir, fileName) {
		t.Errorf("Stage path mismatch: got %q", path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("stale final file should be deleted, stat err = %v", err)
	}
	if _, err := os.Stat(TempPath(path)); !os.IsNotExist(err) {
		t.Errorf("stale temp file should be deleted, stat err = %v", err)
	}
}

func TestStageWorksWithNothingToClear(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, nil)

	path, err := m.Stage("curl#8.8.0#src.tar.gz")
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	if filepath.Base(path) != "curl#8.8.0#src.tar.gz" {
		t.Errorf("unexpected staged name: %q", filepath.Base(path))
	}
}

func TestTempPathAppendsSuffixToWholePath(t *testing.T) {
	got := TempPath("/cache/curl#8.8.0#src.tar.gz")
	if got != "/cache/curl#8.8.0#src.tar.gz.download" {
		t.Errorf("TempPath mismatch: got %q", got)
	}
}

func TestScenarioFilterRemoveThenWipe(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "curl#7.88#curl.tar.gz")
	writeCacheFile(t, dir, "curl#7.86#curl.tar.gz")
	writeCacheFile(t, dir, "wget#1.21#wget.tar.gz")
	m := NewManager(dir, nil)

	if got := matchedNames(t, m, "curl"); len(got) != 2 {
		t.Fatalf("Matching(curl) = %v, want two entries", got)
	}
	if got := matchedNames(t, m, "curl*"); len(got) != 2 {
		t.Fatalf("Matching(curl*) = %v, want two entries", got)
	}

	if err := m.Remove("curl"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := listedNames(t, m); !equalNames(got, []string{"wget#1.21#wget.tar.gz"}) {
		t.Fatalf("after Remove(curl): %v", got)
	}

	if err := m.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if got := listedNames(t, m); len(got) != 0 {
		t.Fatalf("after RemoveAll: %v", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("working directory must survive a wipe: %v", err)
	}
}
