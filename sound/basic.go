// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"math"

	"github.com/ik5/podmix/timespec"
)

type silence struct {
	dur      float64
	channels int
}

func (s silence) Duration() float64 { return s.dur }
func (s silence) Channels() int     { return s.channels }

func (s silence) SampleAt(float64) []float64 {
	return zeroVector(s.channels)
}

// Silence returns a one-channel sound of duration d that samples to
// zero everywhere. d is time-like (see timespec.Seconds).
func Silence(d any) (Sound, error) {
	dur, err := timespec.Seconds(d)
	if err != nil {
		return nil, fmt.Errorf("silence: %w", err)
	}
	if dur < 0 {
		return nil, fmt.Errorf("silence: negative duration %v: %w", dur, ErrPrecondition)
	}

	return silence{dur: dur, channels: 1}, nil
}

type tone struct {
	dur  float64
	freq float64
}

func (s tone) Duration() float64 { return s.dur }
func (s tone) Channels() int     { return 1 }

func (s tone) SampleAt(t float64) []float64 {
	if !inRange(t, s.dur) {
		return zeroVector(1)
	}

	return []float64{math.Sin(2 * math.Pi * s.freq * t)}
}

// Tone returns a one-channel sine wave of the given frequency in Hz
// lasting d.
func Tone(d any, frequency float64) (Sound, error) {
	dur, err := timespec.Seconds(d)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}
	if dur < 0 {
		return nil, fmt.Errorf("tone: negative duration %v: %w", dur, ErrPrecondition)
	}

	return tone{dur: dur, freq: frequency}, nil
}

type sampleFunc struct {
	dur      float64
	channels int
	fn       func(t float64) []float64
}

func (s sampleFunc) Duration() float64 { return s.dur }
func (s sampleFunc) Channels() int     { return s.channels }

func (s sampleFunc) SampleAt(t float64) []float64 {
	if !inRange(t, s.dur) {
		return zeroVector(s.channels)
	}

	return s.fn(t)
}

// FromFunc wraps a pure sampling function as a Sound. fn is only
// called for t inside [0, d); outside that range the sound returns a
// zero vector itself. fn must return exactly channels values.
func FromFunc(d any, channels int, fn func(t float64) []float64) (Sound, error) {
	dur, err := timespec.Seconds(d)
	if err != nil {
		return nil, fmt.Errorf("fromfunc: %w", err)
	}
	if dur < 0 || channels < 1 || fn == nil {
		return nil, fmt.Errorf("fromfunc: bad duration, channels or fn: %w", ErrPrecondition)
	}

	return sampleFunc{dur: dur, channels: channels, fn: fn}, nil
}
