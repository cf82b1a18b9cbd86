package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"

	"ladle/internal/cache"
	"ladle/internal/config"
	"ladle/internal/logging"
)

// Request describes one artifact to fetch into the cache.
type Request struct {
	Name     string
	Version  string
	URL      string
	Checksum string // optional; algo:hex or bare SHA-256 hex
}

// Result reports a committed fetch.
type Result struct {
	Path     string
	Bytes    int64
	Duration time.Duration
}

// Downloader streams artifacts into the cache through its staging protocol.
type Downloader struct {
	client    *http.Client
	cache     *cache.Manager
	logger    *slog.Logger
	userAgent string
}

// NewDownloader builds a downloader over the given cache manager. Timeout
// and user agent come from the fetch config section.
func NewDownloader(cfg *config.Config, manager *cache.Manager, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.Fetch.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Downloader{
		client:    &http.Client{Timeout: timeout},
		cache:     manager,
		logger:    logging.NewComponentLogger(logger, "download"),
		userAgent: cfg.Fetch.UserAgent,
	}
}

// Fetch downloads one artifact and commits it into the cache. Any failure
// leaves no new file behind: the staging file is removed and the error
// returned as is. There are no retries.
func (d *Downloader) Fetch(ctx context.Context, req Request) (Result, error) {
	fileName, err := cache.FileName(req.Name, req.Version, SourceToken(req.URL))
	if err != nil {
		return Result{}, err
	}
	expected, err := parseChecksum(req.Checksum)
	if err != nil {
		return Result{}, err
	}

	dest, err := d.cache.Stage(fileName)
	if err != nil {
		return Result{}, err
	}
	tempPath := cache.TempPath(dest)

	logger := d.logger.With(logging.String(logging.FieldSessionID, uuid.NewString()))
	logger.Info("fetching artifact",
		logging.String("package", req.Name),
		logging.String("version", req.Version),
		logging.String("url", req.URL))

	started := time.Now()
	written, err := d.transfer(ctx, req.URL, tempPath, expected)
	if err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			logger.Warn("staging leftover not removed",
				logging.String("path", tempPath),
				logging.Error(removeErr),
				logging.String(logging.FieldEventType, "staging_cleanup_failed"),
				logging.String(logging.FieldErrorHint, "delete the .download file by hand before retrying"))
		}
		return Result{}, err
	}

	if err := os.Rename(tempPath, dest); err != nil {
		os.Remove(tempPath)
		return Result{}, fmt.Errorf("download: commit %s: %w", dest, err)
	}

	elapsed := time.Since(started)
	logger.Info("artifact cached",
		logging.String("package", req.Name),
		logging.String("version", req.Version),
		logging.String("path", dest),
		logging.Int64("bytes", written),
		logging.Duration("elapsed", elapsed))
	return Result{Path: dest, Bytes: written, Duration: elapsed}, nil
}

// transfer streams the response body to the staging path, comparing against
// expected when a checksum was requested. The caller owns cleanup of the
// staging file on failure.
func (d *Downloader) transfer(ctx context.Context, url, tempPath string, expected digest.Digest) (int64, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("download: build request: %w", err)
	}
	if d.userAgent != "" {
		httpReq.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("download: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if detail := strings.TrimSpace(string(body)); detail != "" {
			return 0, fmt.Errorf("download: %s returned %d: %s", url, resp.StatusCode, detail)
		}
		return 0, fmt.Errorf("download: %s returned %d", url, resp.StatusCode)
	}

	file, err := os.Create(tempPath)
	if err != nil {
		return 0, fmt.Errorf("download: create staging file: %w", err)
	}

	writer := io.Writer(file)
	var verifier digest.Verifier
	if expected != "" {
		verifier = expected.Verifier()
		writer = io.MultiWriter(file, verifier)
	}

	written, err := io.Copy(writer, resp.Body)
	if err != nil {
		file.Close()
		return 0, fmt.Errorf("download: stream body: %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("download: close staging file: %w", err)
	}
	if verifier != nil && !verifier.Verified() {
		return 0, fmt.Errorf("download: checksum mismatch for %s (want %s)", url, expected)
	}
	return written, nil
}
