// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"

	"github.com/ik5/podmix/timespec"
)

type trim struct {
	src   Sound
	start float64
	dur   float64
}

func (tr trim) Duration() float64 { return tr.dur }
func (tr trim) Channels() int     { return tr.src.Channels() }

func (tr trim) SampleAt(t float64) []float64 {
	if !inRange(t, tr.dur) {
		return zeroVector(tr.src.Channels())
	}

	return tr.src.SampleAt(t + tr.start)
}

// Trim restricts s to the window [start, end). The result has
// duration end-start and sample 0 of the result is sample start of
// the source. Both bounds are time-like.
func Trim(s Sound, start, end any) (Sound, error) {
	from, err := timespec.Seconds(start)
	if err != nil {
		return nil, fmt.Errorf("trim start: %w", err)
	}
	to, err := timespec.Seconds(end)
	if err != nil {
		return nil, fmt.Errorf("trim end: %w", err)
	}
	if from < 0 || to < from {
		return nil, fmt.Errorf("trim: window [%v, %v) is invalid: %w", from, to, ErrPrecondition)
	}

	return trim{src: s, start: from, dur: to - from}, nil
}

type shift struct {
	src    Sound
	amount float64
}

func (sh shift) Duration() float64 { return sh.src.Duration() + sh.amount }
func (sh shift) Channels() int     { return sh.src.Channels() }

func (sh shift) SampleAt(t float64) []float64 {
	if !inRange(t, sh.Duration()) || t < sh.amount {
		return zeroVector(sh.src.Channels())
	}

	return sh.src.SampleAt(t - sh.amount)
}

// Timeshift prepends amount seconds of silence with the same channel
// count as s. amount is time-like and must be non-negative.
func Timeshift(s Sound, amount any) (Sound, error) {
	sec, err := timespec.Seconds(amount)
	if err != nil {
		return nil, fmt.Errorf("timeshift: %w", err)
	}
	if sec < 0 {
		return nil, fmt.Errorf("timeshift: negative amount %v: %w", sec, ErrPrecondition)
	}

	return shift{src: s, amount: sec}, nil
}
