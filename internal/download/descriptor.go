package download

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/opencontainers/go-digest"
)

// sourceSeparators matches every run of characters a cache file name cannot
// carry. Each run collapses into a single underscore, so
// https://www.7-zip.org/a/7z2408-x64.msi becomes
// https_www.7-zip.org_a_7z2408-x64.msi.
var sourceSeparators = regexp.MustCompile(`[^\w.-]+`)

// SourceToken derives the source field of a cache file name from the
// download URL. The mapping is lossy; the token records provenance but
// nothing reverses it back into a URL.
func SourceToken(url string) string {
	return sourceSeparators.ReplaceAllString(url, "_")
}

// parseChecksum accepts either the algo:hex form or a bare hex string, which
// is taken as SHA-256. An empty value means no verification was requested.
func parseChecksum(value string) (digest.Digest, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	var dgst digest.Digest
	if strings.ContainsRune(value, ':') {
		parsed, err := digest.Parse(value)
		if err != nil {
			return "", fmt.Errorf("download: parse checksum %q: %w", value, err)
		}
		dgst = parsed
	} else {
		dgst = digest.NewDigestFromEncoded(digest.SHA256, strings.ToLower(value))
		if err := dgst.Validate(); err != nil {
			return "", fmt.Errorf("download: validate checksum %q: %w", value, err)
		}
	}

	if !dgst.Algorithm().Available() {
		return "", fmt.Errorf("download: checksum algorithm %q unavailable", dgst.Algorithm())
	}
	return dgst, nil
}
