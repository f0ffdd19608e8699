// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates frames from a function, for driving pipeline
// stages without a real decoder.
type mockSource struct {
	rate        int
	channels    int
	totalFrames int
	generated   int
	value       func(frame, channel int) float32
	closed      bool
}

func newMockSource(rate, channels, totalFrames int, value func(frame, channel int) float32) *mockSource {
	return &mockSource{
		rate:        rate,
		channels:    channels,
		totalFrames: totalFrames,
		value:       value,
	}
}

func newConstantSource(rate, channels, totalFrames int, v float32) *mockSource {
	return newMockSource(rate, channels, totalFrames, func(int, int) float32 { return v })
}

func newSilentSource(rate, channels, totalFrames int) *mockSource {
	return newConstantSource(rate, channels, totalFrames, 0)
}

func newSineSource(rate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(rate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *mockSource) SampleRate() int { return m.rate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if rest := m.totalFrames - m.generated; frames > rest {
		frames = rest
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.value(m.generated+f, c)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}
