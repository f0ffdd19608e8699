// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock Sound implementations for tests in
// other packages. It mirrors the sound.Sound contract without
// importing the sound package, to stay usable from anywhere in the
// module.
package audiotest

import "math"

// Const is a sound with a fixed value on every channel, mainly for
// exercising channel-layout validation with widths the public
// generators cannot produce.
type Const struct {
	Dur   float64
	Chans int
	Value float64
}

func (c Const) Duration() float64 { return c.Dur }
func (c Const) Channels() int     { return c.Chans }

func (c Const) SampleAt(t float64) []float64 {
	out := make([]float64, c.Chans)
	if t < 0 || t >= c.Dur {
		return out
	}
	for i := range out {
		out[i] = c.Value
	}

	return out
}

// Sine is a mono sine generator with an independently chosen
// amplitude.
type Sine struct {
	Dur       float64
	Frequency float64
	Amplitude float64
}

func (s Sine) Duration() float64 { return s.Dur }
func (s Sine) Channels() int     { return 1 }

func (s Sine) SampleAt(t float64) []float64 {
	if t < 0 || t >= s.Dur {
		return []float64{0}
	}

	return []float64{s.Amplitude * math.Sin(2*math.Pi*s.Frequency*t)}
}

// Probe wraps a sound and records every sample time, for asserting
// how a combinator drives its source.
type Probe struct {
	Src interface {
		Duration() float64
		Channels() int
		SampleAt(t float64) []float64
	}
	Times []float64
}

func (p *Probe) Duration() float64 { return p.Src.Duration() }
func (p *Probe) Channels() int     { return p.Src.Channels() }

func (p *Probe) SampleAt(t float64) []float64 {
	p.Times = append(p.Times, t)
	return p.Src.SampleAt(t)
}
