// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	// ErrClosed is returned by every Session method after Close.
	ErrClosed = errors.New("session closed")
	// ErrNoFetcher is returned by a Loader without a Fetcher.
	ErrNoFetcher = errors.New("loader has no fetcher")
)
