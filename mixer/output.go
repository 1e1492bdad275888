// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/ik5/harmix/audio"
)

// Output is the audio device a session plays through. Play takes the device
// lock itself; Lock and Unlock guard edits to streamers that are already
// playing. An Output is shared: sessions never close it, they only detach
// their own streamers.
type Output interface {
	Init(sampleRate int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// DefaultBuffer is the speaker buffer length.
const DefaultBuffer = 100 * time.Millisecond

// Speaker is the system audio output through beep's speaker package. beep
// opens the device once per process, so every session shares the value
// returned by SystemSpeaker and the device keeps the rate it was first
// opened at.
type Speaker struct {
	open   func(sr beep.SampleRate, bufferSize int) error
	play   func(s ...beep.Streamer)
	lock   func()
	unlock func()

	mu     sync.Mutex
	buffer time.Duration
	rate   int
}

var systemSpeaker = &Speaker{
	open:   speaker.Init,
	play:   speaker.Play,
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
}

// SystemSpeaker returns the process-wide speaker.
func SystemSpeaker() *Speaker { return systemSpeaker }

// SetBuffer sets the buffer length used when the device is opened. It has
// no effect once the device is open.
func (s *Speaker) SetBuffer(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffer = d
}

// Init opens the device at sampleRate the first time it is called. Later
// calls at the same rate do nothing; another rate fails with
// audio.ErrRateMismatch since the open device cannot change rate.
func (s *Speaker) Init(sampleRate int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rate != 0 {
		if s.rate != sampleRate {
			return fmt.Errorf("%w: speaker is open at %d Hz, tracks are %d Hz",
				audio.ErrRateMismatch, s.rate, sampleRate)
		}
		return nil
	}

	buffer := s.buffer
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	sr := beep.SampleRate(sampleRate)
	if err := s.open(sr, sr.N(buffer)); err != nil {
		return fmt.Errorf("initializing speaker at %d Hz: %w", sampleRate, err)
	}
	s.rate = sampleRate

	return nil
}

// Play starts st on the device.
func (s *Speaker) Play(st beep.Streamer) { s.play(st) }

// Lock pauses the device callback so live streamers can be edited.
func (s *Speaker) Lock() { s.lock() }

// Unlock resumes the device callback.
func (s *Speaker) Unlock() { s.unlock() }
