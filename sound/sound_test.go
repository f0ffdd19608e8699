// SPDX-License-Identifier: EPL-2.0

package sound

import "testing"

// TestOutOfRangeContract checks the algebra-wide invariant: outside
// [0, duration) every sound samples to a zero vector of its own
// channel count.
func TestOutOfRangeContract(t *testing.T) {
	t.Parallel()

	mono := rampSound{dur: 2}
	stereo := constSound{dur: 3, values: []float64{0.5, -0.5}}

	build := map[string]func() (Sound, error){
		"silence": func() (Sound, error) { return Silence(2) },
		"tone":    func() (Sound, error) { return Tone(2, 220) },
		"stereo promote": func() (Sound, error) {
			return ToStereo(mono)
		},
		"fade": func() (Sound, error) {
			return Fade(stereo, []ControlPoint{{Gain: 0.5, At: 1}})
		},
		"pan": func() (Sound, error) {
			return Pan(stereo, 0.3)
		},
		"trim": func() (Sound, error) {
			return Trim(stereo, 1, 2.5)
		},
		"timeshift": func() (Sound, error) {
			return Timeshift(stereo, 1)
		},
		"mix": func() (Sound, error) {
			return Mix(stereo, mono)
		},
		"append": func() (Sound, error) {
			return Append(mono, stereo)
		},
		"mono demote": func() (Sound, error) {
			return ToMono(stereo), nil
		},
	}

	for name, fn := range build {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := fn()
			if err != nil {
				t.Fatalf("building sound: %v", err)
			}

			channels := s.Channels()
			for _, at := range []float64{-100, -0.001, s.Duration(), s.Duration() + 0.001, 1e9} {
				got := s.SampleAt(at)
				if len(got) != channels {
					t.Fatalf("SampleAt(%v) has %d values, want %d", at, len(got), channels)
				}
				for c, v := range got {
					if v != 0 {
						t.Errorf("SampleAt(%v)[%d] = %v, want 0", at, c, v)
					}
				}
			}

			// Channel count also holds inside the range.
			if got := s.SampleAt(s.Duration() / 2); len(got) != channels {
				t.Errorf("in-range sample has %d values, want %d", len(got), channels)
			}
		})
	}
}
