// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

type sequence struct {
	parts    []Sound
	starts   []float64 // cumulative start time of each part
	dur      float64
	channels int
}

func (s sequence) Duration() float64 { return s.dur }
func (s sequence) Channels() int     { return s.channels }

func (s sequence) SampleAt(t float64) []float64 {
	if !inRange(t, s.dur) {
		return zeroVector(s.channels)
	}

	// Each part owns [start, start+dur); the last interval is closed
	// on the right up to the total duration.
	for i, part := range s.parts {
		start := s.starts[i]
		end := start + part.Duration()
		if t >= start && (t < end || i == len(s.parts)-1) {
			return part.SampleAt(t - start)
		}
	}

	return zeroVector(s.channels)
}

// Append concatenates sounds in order; the result's duration is the
// sum of the parts'. All parts must share a channel count, with mono
// parts broadcast when every non-mono part agrees on a width.
// Appending nothing is an error.
func Append(sounds ...Sound) (Sound, error) {
	if len(sounds) == 0 {
		return nil, fmt.Errorf("append: no sounds: %w", ErrPrecondition)
	}

	channels := 1
	for _, s := range sounds {
		if n := s.Channels(); n != 1 {
			if channels != 1 && n != channels {
				return nil, fmt.Errorf("append: %d vs %d channels: %w", channels, n, ErrChannelMismatch)
			}
			channels = n
		}
	}

	parts := make([]Sound, len(sounds))
	starts := make([]float64, len(sounds))
	total := 0.0
	for i, s := range sounds {
		if s.Channels() == 1 && channels != 1 {
			s = broadcast{src: s, channels: channels}
		}
		parts[i] = s
		starts[i] = total
		total += s.Duration()
	}

	return sequence{parts: parts, starts: starts, dur: total, channels: channels}, nil
}
