// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	expectedMsg := "dst size must be multiple of channels"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}
}

func TestDecodeError_Is(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad header")
	err := fmt.Errorf("loading: %w", &DecodeError{Index: 2, Label: "Low Harmony", Format: "wav", Err: cause})

	if !errors.Is(err, ErrDecode) {
		t.Error("errors.Is(err, ErrDecode) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if errors.Is(err, ErrNotReady) {
		t.Error("errors.Is(err, ErrNotReady) = true, want false")
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("errors.As(err, *DecodeError) = false")
	}
	if de.Index != 2 {
		t.Errorf("DecodeError.Index = %d, want 2", de.Index)
	}
}

func TestDecodeError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{
			name: "label and format",
			err:  &DecodeError{Label: "Original", Format: "mp3", Err: errors.New("eof")},
			want: "decode track Original (mp3): eof",
		},
		{
			name: "index only",
			err:  &DecodeError{Index: 3, Err: errors.New("eof")},
			want: "decode track #3: eof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("DecodeError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckRates(t *testing.T) {
	t.Parallel()

	a := NewSampleBuffer(1, 10, 44100)
	b := NewSampleBuffer(2, 20, 44100)
	c := NewSampleBuffer(1, 5, 48000)

	if err := CheckRates([]*SampleBuffer{a, b}); err != nil {
		t.Errorf("CheckRates(matching) error = %v, want nil", err)
	}

	err := CheckRates([]*SampleBuffer{a, nil, b, c})
	if !errors.Is(err, ErrRateMismatch) {
		t.Fatalf("CheckRates(mismatch) error = %v, want ErrRateMismatch", err)
	}

	var rm *RateMismatchError
	if !errors.As(err, &rm) {
		t.Fatal("errors.As(err, *RateMismatchError) = false")
	}
	if rm.Index != 3 || rm.Want != 44100 || rm.Got != 48000 {
		t.Errorf("RateMismatchError = %+v, want {Index:3 Want:44100 Got:48000}", *rm)
	}
}
