// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM supported")
	ErrTooLarge            = errors.New("audio data exceeds WAV size limit")
)
