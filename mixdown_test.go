// SPDX-License-Identifier: EPL-2.0

package harmix

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/fetch"
	"github.com/ik5/harmix/internal/audiotest"
	"github.com/ik5/harmix/mixer"
	"github.com/ik5/harmix/render"
	"github.com/spf13/afero"
)

func memOptions(t *testing.T, files map[string]*audio.SampleBuffer) (Options, afero.Fs) {
	t.Helper()

	mem := afero.NewMemMapFs()
	for name, buf := range files {
		if err := afero.WriteFile(mem, name, audiotest.WAV(buf), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return Options{
		Fetcher: fetch.FS{Fs: mem},
		Gain:    render.DefaultGain,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, mem
}

func TestMixdown(t *testing.T) {
	t.Parallel()

	opts, _ := memOptions(t, map[string]*audio.SampleBuffer{
		"/orig.wav":  audiotest.Constant(8000, 1, 8000, 0.4),
		"/third.wav": audiotest.Constant(8000, 2, 4000, 0.4),
	})

	data, err := Mixdown(context.Background(), []string{"/orig.wav", "/third.wav"}, opts)
	if err != nil {
		t.Fatalf("Mixdown() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if dec.SampleRate != 8000 || dec.NumChans != 2 || dec.BitDepth != 16 {
		t.Errorf("header = %d Hz %d ch %d bit, want 8000 Hz 2 ch 16 bit",
			dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	if len(pcm.Data) != 2*8000 {
		t.Fatalf("got %d samples, want %d", len(pcm.Data), 2*8000)
	}

	// both tracks at 0.75: 0.6 while overlapping, 0.3 after; the 16-bit
	// fixtures lose a little on the way in
	if got := pcm.Data[0]; got < 19640 || got > 19670 {
		t.Errorf("first sample = %d, want ~19660", got)
	}
	if got := pcm.Data[2*6000]; got < 9815 || got > 9840 {
		t.Errorf("sample at 0.75s = %d, want ~9830", got)
	}
}

func TestMixdown_TrackFailure(t *testing.T) {
	t.Parallel()

	opts, _ := memOptions(t, map[string]*audio.SampleBuffer{
		"/orig.wav": audiotest.Constant(8000, 1, 100, 0.4),
	})

	data, err := Mixdown(context.Background(), []string{"/orig.wav", "/gone.wav"}, opts)
	if data != nil {
		t.Error("Mixdown() returned bytes despite a failed track")
	}
	if !errors.Is(err, audio.ErrDecode) {
		t.Errorf("Mixdown() error = %v, want ErrDecode", err)
	}
}

func TestMixdown_Canceled(t *testing.T) {
	t.Parallel()

	opts, _ := memOptions(t, map[string]*audio.SampleBuffer{
		"/orig.wav": audiotest.Constant(8000, 1, 100, 0.4),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if data, err := Mixdown(ctx, []string{"/orig.wav"}, opts); data != nil || err == nil {
		t.Errorf("Mixdown() = (%d bytes, %v), want an error", len(data), err)
	}
}

func TestMixdown_ZeroOptions(t *testing.T) {
	t.Parallel()

	data, err := Mixdown(context.Background(), []string{"/orig.wav"}, Options{})
	if data != nil || !errors.Is(err, mixer.ErrNoFetcher) {
		t.Errorf("Mixdown() = (%d bytes, %v), want ErrNoFetcher", len(data), err)
	}

	if opts := DefaultOptions(); opts.Fetcher == nil || opts.Gain != render.DefaultGain {
		t.Errorf("DefaultOptions() = %+v, want a fetcher at the default gain", opts)
	}
}

func TestExport_RateMismatch(t *testing.T) {
	t.Parallel()

	inputs := render.Fixed([]*audio.SampleBuffer{
		audiotest.Constant(44100, 1, 10, 0.1),
		audiotest.Constant(48000, 1, 10, 0.1),
	}, render.DefaultGain)

	if _, err := Export(context.Background(), inputs, 2); !errors.Is(err, audio.ErrRateMismatch) {
		t.Errorf("Export() error = %v, want ErrRateMismatch", err)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll("/out", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(mem, "/out/"+DefaultOutput, []byte("RIFF")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := afero.ReadFile(mem, "/out/"+DefaultOutput)
	if err != nil || string(got) != "RIFF" {
		t.Errorf("ReadFile() = (%q, %v), want RIFF", got, err)
	}

	entries, _ := afero.ReadDir(mem, "/out")
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output", len(entries))
	}
}

func TestWriteFile_ReadOnly(t *testing.T) {
	t.Parallel()

	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := WriteFile(ro, "/mix.wav", []byte("RIFF")); err == nil {
		t.Error("WriteFile() on a read-only filesystem succeeded")
	}
	if ok, _ := afero.Exists(ro, "/mix.wav"); ok {
		t.Error("partial output left behind")
	}
}
