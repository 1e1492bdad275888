// SPDX-License-Identifier: EPL-2.0

// Package fetch resolves track references to encoded bytes. FS reads
// through an afero filesystem, HTTP issues a GET, and Router picks between
// them by URL scheme.
package fetch
