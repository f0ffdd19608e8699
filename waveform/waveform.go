// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/podmix/sound"
)

// Extract samples one channel of s at steps evenly spaced times
// across its duration. The first point is at t=0, and the spacing is
// duration/steps, so the final point stays inside the sound.
func Extract(s sound.Sound, channel, steps int) ([]float64, error) {
	if channel < 0 || channel >= s.Channels() {
		return nil, fmt.Errorf("waveform: channel %d of %d: %w", channel, s.Channels(), sound.ErrUnsupportedChannelLayout)
	}
	if steps < 1 {
		return nil, fmt.Errorf("waveform: %d steps: %w", steps, sound.ErrPrecondition)
	}

	step := s.Duration() / float64(steps)
	points := make([]float64, steps)
	for i := range points {
		points[i] = s.SampleAt(float64(i) * step)[channel]
	}

	return points, nil
}

// Summary describes extracted points in one line.
type Summary struct {
	Min  float64
	Max  float64
	Peak float64 // max absolute amplitude
	RMS  float64
}

// Summarize computes min/max/peak/RMS over points. Empty input
// yields the zero Summary.
func Summarize(points []float64) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	lo := floats.Min(points)
	hi := floats.Max(points)

	return Summary{
		Min:  lo,
		Max:  hi,
		Peak: math.Max(math.Abs(lo), math.Abs(hi)),
		RMS:  floats.Norm(points, 2) / math.Sqrt(float64(len(points))),
	}
}

// WriteTSV dumps time/amplitude pairs for one channel of s, one pair
// per line, for gnuplot-style consumers.
func WriteTSV(w io.Writer, s sound.Sound, channel, steps int) error {
	points, err := Extract(s, channel, steps)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	step := s.Duration() / float64(steps)
	for i, v := range points {
		if _, err := fmt.Fprintf(bw, "%.6f\t%.6f\n", float64(i)*step, v); err != nil {
			return fmt.Errorf("writing waveform: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing waveform: %w", err)
	}

	return nil
}
