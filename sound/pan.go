// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

type pan struct {
	src    Sound
	amount float64
}

func (p pan) Duration() float64 { return p.src.Duration() }
func (p pan) Channels() int     { return 2 }

func (p pan) SampleAt(t float64) []float64 {
	in := p.src.SampleAt(t)
	a := p.amount

	return []float64{
		(1-a)*in[0] + a*in[1],
		a*in[0] + (1-a)*in[1],
	}
}

// Pan cross-mixes the two channels of a stereo sound. amount 0 is the
// identity, 0.5 collapses both channels to their mean, and 1 swaps
// them. s must have exactly two channels and amount must lie in
// [0, 1].
func Pan(s Sound, amount float64) (Sound, error) {
	if n := s.Channels(); n != 2 {
		return nil, fmt.Errorf("pan: got %d channels, want 2: %w", n, ErrUnsupportedChannelLayout)
	}
	if amount < 0 || amount > 1 {
		return nil, fmt.Errorf("pan: amount %v outside [0,1]: %w", amount, ErrPrecondition)
	}

	return pan{src: s, amount: amount}, nil
}
