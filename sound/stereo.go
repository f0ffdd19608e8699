// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

type monoToStereo struct {
	src Sound
}

func (m monoToStereo) Duration() float64 { return m.src.Duration() }
func (m monoToStereo) Channels() int     { return 2 }

func (m monoToStereo) SampleAt(t float64) []float64 {
	v := m.src.SampleAt(t)[0]
	return []float64{v, v}
}

// ToStereo promotes a mono sound to stereo by duplicating its single
// channel. A stereo sound passes through unchanged; any other layout
// fails with ErrUnsupportedChannelLayout.
func ToStereo(s Sound) (Sound, error) {
	switch s.Channels() {
	case 1:
		return monoToStereo{src: s}, nil
	case 2:
		return s, nil
	default:
		return nil, fmt.Errorf("tostereo: got %d channels: %w", s.Channels(), ErrUnsupportedChannelLayout)
	}
}

type downmix struct {
	src Sound
}

func (d downmix) Duration() float64 { return d.src.Duration() }
func (d downmix) Channels() int     { return 1 }

func (d downmix) SampleAt(t float64) []float64 {
	in := d.src.SampleAt(t)
	sum := 0.0
	for _, v := range in {
		sum += v
	}

	return []float64{sum / float64(len(in))}
}

// ToMono collapses any sound to one channel by averaging its
// channels. A mono sound passes through unchanged.
func ToMono(s Sound) Sound {
	if s.Channels() == 1 {
		return s
	}

	return downmix{src: s}
}

// broadcast repeats a mono source's sample across n channels. Used
// by Mix to reconcile mono operands with wider ones.
type broadcast struct {
	src      Sound
	channels int
}

func (b broadcast) Duration() float64 { return b.src.Duration() }
func (b broadcast) Channels() int     { return b.channels }

func (b broadcast) SampleAt(t float64) []float64 {
	v := b.src.SampleAt(t)[0]
	out := make([]float64, b.channels)
	for i := range out {
		out[i] = v
	}

	return out
}
