// Package cache models the on-disk download cache: files named
// <name>#<version>#<source> under a single working directory.
//
// Manager scans, filters, deletes, and stages entries. It holds no state
// between calls; each operation re-reads the directory, so results are
// point-in-time snapshots. Staging clears stale leftovers and hands back the
// final destination path, leaving the write-to-temp-then-rename protocol to
// the caller.
package cache
