// Package download fetches package artifacts over HTTP into the local cache.
//
// Transfers never touch the final cache path directly: the body streams to
// the staging sibling and an atomic rename commits it once the transfer
// finished and the checksum, when one was given, verified. A crash mid-fetch
// therefore leaves at worst a staging leftover, which the next attempt for
// the same artifact clears before starting.
package download
