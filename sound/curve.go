// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"

	"github.com/ik5/podmix/timespec"
)

// ControlPoint is one fade curve vertex: the gain to reach at a point
// in time. At is time-like (see timespec.Seconds).
type ControlPoint struct {
	Gain float64
	At   any
}

type curvePoint struct {
	gain float64
	t    float64
}

// Curve is a piecewise-linear gain curve over time, evaluated by
// interpolating between control points. The zero Curve is the
// constant gain 1.
type Curve struct {
	points []curvePoint
}

// NewCurve normalizes and validates control points into a Curve.
// Gains must lie in [0, 1], times must be non-negative and
// non-decreasing. Duplicate times are allowed to express a step.
// When the first point is later than t=0, an implicit (gain 1, t=0)
// point is prepended so every t inside the curve has a bracket.
func NewCurve(points []ControlPoint) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, nil
	}

	normalized := make([]curvePoint, 0, len(points)+1)
	prev := 0.0
	for i, p := range points {
		at, err := timespec.Seconds(p.At)
		if err != nil {
			return Curve{}, fmt.Errorf("curve point %d: %w", i, err)
		}
		if p.Gain < 0 || p.Gain > 1 {
			return Curve{}, fmt.Errorf("curve point %d: gain %v outside [0,1]: %w", i, p.Gain, ErrPrecondition)
		}
		if at < 0 || at < prev {
			return Curve{}, fmt.Errorf("curve point %d: time %v not ascending: %w", i, at, ErrPrecondition)
		}
		prev = at
		normalized = append(normalized, curvePoint{gain: p.Gain, t: at})
	}

	if normalized[0].t > 0 {
		normalized = append([]curvePoint{{gain: 1, t: 0}}, normalized...)
	}

	return Curve{points: normalized}, nil
}

// Gain evaluates the curve at time t seconds. Before the first point
// the first gain holds, past the last point the last gain holds, and
// between bracketing points the gain is linearly interpolated. A
// degenerate bracket (two points at the same time) yields the
// earlier gain.
func (c Curve) Gain(t float64) float64 {
	if len(c.points) == 0 {
		return 1
	}

	last := c.points[len(c.points)-1]
	if t >= last.t {
		return last.gain
	}
	if t <= c.points[0].t {
		return c.points[0].gain
	}

	for i := 1; i < len(c.points); i++ {
		p0, p1 := c.points[i-1], c.points[i]
		if t > p1.t {
			continue
		}
		if p1.t == p0.t {
			return p0.gain
		}

		return p0.gain + (p1.gain-p0.gain)*(t-p0.t)/(p1.t-p0.t)
	}

	return last.gain
}

// Len reports the number of control points after normalization,
// including the implicit leading point when one was added.
func (c Curve) Len() int { return len(c.points) }
