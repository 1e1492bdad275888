// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/harmix/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing. Like the
// real reader it returns a count of interleaved values.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return int64(len(m.samples) / m.channels) }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	n -= n % m.channels
	m.offset += n

	return n, nil
}

func newMockSource(rate, channels int, samples []float32) *source {
	return &source{
		dec:        &mockOggVorbisReader{sampleRate: rate, channels: channels, samples: samples},
		sampleRate: rate,
		channels:   channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
		{"ogg capture without vorbis", append([]byte("OggS"), make([]byte, 60)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotVorbisFile) {
				t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, make([]float32, 200))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	// 100 frames known up front
	if src.BufSize() != 200 {
		t.Errorf("BufSize() = %d, want 200", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_BufSizeCapped(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, make([]float32, 8001))
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096 for streams longer than a second", src.BufSize())
	}
}

func TestSource_ReadSamplesCountsValues(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newMockSource(8000, 2, samples)

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}
	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamplesWholeFrames(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 3, make([]float32, 30))

	// 7 slots only fit two 3-channel frames
	n, err := src.ReadSamples(make([]float32, 7))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	if _, err := src.ReadSamples(make([]float32, 2)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(short) error = %v, want ErrInvalidDstSize", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggVorbisReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF},
		sampleRate: 8000,
		channels:   1,
	}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Collect(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2*5000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 0.5
		} else {
			samples[i] = -0.5
		}
	}

	buf, err := audio.Collect(newMockSource(8000, 2, samples))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if buf.Frames() != 5000 {
		t.Fatalf("Frames() = %d, want 5000", buf.Frames())
	}
	if buf.Data[0][4999] != 0.5 || buf.Data[1][4999] != -0.5 {
		t.Errorf("last frame = (%v, %v), want (0.5, -0.5)", buf.Data[0][4999], buf.Data[1][4999])
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 44100*2)
	mock := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples}
	src := &source{dec: mock, sampleRate: 44100, channels: 2}
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mock.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
