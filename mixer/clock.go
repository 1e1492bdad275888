// SPDX-License-Identifier: EPL-2.0

package mixer

import "time"

// Clock schedules the auto-stop at the end of the longest track.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending Clock callback.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
