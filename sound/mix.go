// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

type mix struct {
	a, b Sound
}

func (m mix) Duration() float64 {
	return max(m.a.Duration(), m.b.Duration())
}

func (m mix) Channels() int { return m.a.Channels() }

func (m mix) SampleAt(t float64) []float64 {
	// Each source clamps to zero past its own duration, so no bound
	// check is needed here.
	out := m.a.SampleAt(t)
	vb := m.b.SampleAt(t)
	for i := range out {
		out[i] += vb[i]
	}

	return out
}

// Mix overlays two sounds by elementwise sum. The result lasts as
// long as the longer source; each source contributes zeros past its
// own duration. When the channel counts differ, a mono operand is
// broadcast to the other's width; any other disagreement fails with
// ErrChannelMismatch.
func Mix(a, b Sound) (Sound, error) {
	ca, cb := a.Channels(), b.Channels()
	switch {
	case ca == cb:
	case ca == 1:
		a = broadcast{src: a, channels: cb}
	case cb == 1:
		b = broadcast{src: b, channels: ca}
	default:
		return nil, fmt.Errorf("mix: %d vs %d channels: %w", ca, cb, ErrChannelMismatch)
	}

	return mix{a: a, b: b}, nil
}

// Overlay mixes b into a starting at a time-like offset. It is the
// common timeshift-then-mix composition used when laying out a piece.
func Overlay(a, b Sound, at any) (Sound, error) {
	shifted, err := Timeshift(b, at)
	if err != nil {
		return nil, err
	}

	return Mix(a, shifted)
}
