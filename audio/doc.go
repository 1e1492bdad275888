// SPDX-License-Identifier: EPL-2.0

// Package audio holds the types every other harmix package shares.
//
//   - Source: a streaming decoder output of interleaved float32 samples
//   - Decoder and Registry: per-container constructors of Sources
//   - SampleBuffer: one fully decoded track, de-interleaved per channel
//   - Collect: drains a Source into a SampleBuffer
//   - Downmix: averages a SampleBuffer to mono
//   - error kinds shared by mixing, rendering and encoding
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns the number of float32 values written, not frames.
// A read of 0 values with io.EOF ends the stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use buf[:n]
//	}
//
// Collect does exactly that and de-interleaves the result:
//
//	buf, err := audio.Collect(src)
//	left := buf.Channel(0)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Tracks are never resampled: every
// buffer keeps the rate it was decoded at, and CheckRates reports the first
// track that disagrees with the others.
//
// # Errors
//
// ErrDecode, ErrNotReady, ErrRange, ErrRateMismatch and ErrResource are the
// kinds callers test with errors.Is. DecodeError and RateMismatchError carry
// per-track detail and match their kind:
//
//	var de *audio.DecodeError
//	if errors.As(err, &de) {
//	    log.Printf("track %d (%s) failed", de.Index, de.Format)
//	}
package audio
