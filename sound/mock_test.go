// SPDX-License-Identifier: EPL-2.0

package sound

import "math"

// constSound is an n-channel test helper with a fixed value per
// channel.
type constSound struct {
	dur    float64
	values []float64
}

func (c constSound) Duration() float64 { return c.dur }
func (c constSound) Channels() int     { return len(c.values) }

func (c constSound) SampleAt(t float64) []float64 {
	if !inRange(t, c.dur) {
		return zeroVector(len(c.values))
	}

	out := make([]float64, len(c.values))
	copy(out, c.values)
	return out
}

// rampSound is mono and samples to t itself, making delegation
// offsets visible in the output.
type rampSound struct {
	dur float64
}

func (r rampSound) Duration() float64 { return r.dur }
func (r rampSound) Channels() int     { return 1 }

func (r rampSound) SampleAt(t float64) []float64 {
	if !inRange(t, r.dur) {
		return zeroVector(1)
	}

	return []float64{t}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vectorEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approxEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}
