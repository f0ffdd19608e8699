// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

type fade struct {
	src   Sound
	curve Curve
}

func (f fade) Duration() float64 { return f.src.Duration() }
func (f fade) Channels() int     { return f.src.Channels() }

func (f fade) SampleAt(t float64) []float64 {
	out := f.src.SampleAt(t)
	gain := f.curve.Gain(t)
	for i := range out {
		out[i] *= gain
	}

	return out
}

// Fade scales s by the piecewise-linear gain curve described by
// points. Duration and channel count are unchanged. An empty point
// list leaves the sound untouched.
func Fade(s Sound, points []ControlPoint) (Sound, error) {
	curve, err := NewCurve(points)
	if err != nil {
		return nil, fmt.Errorf("fade: %w", err)
	}

	return fade{src: s, curve: curve}, nil
}

// FadeCurve is Fade with an already-built Curve, for callers that
// reuse one curve across several sounds.
func FadeCurve(s Sound, curve Curve) Sound {
	return fade{src: s, curve: curve}
}
