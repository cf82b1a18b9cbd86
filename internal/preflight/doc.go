// Package preflight provides readiness checks for the filesystem paths
// ladle depends on.
//
// These checks run in two contexts:
//   - The fetch command calls RunAll before starting a download so a full
//     disk or unwritable cache directory fails fast instead of mid-transfer.
//   - The CLI "ladle status" command renders the same results for operators.
package preflight
