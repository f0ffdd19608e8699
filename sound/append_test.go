// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"testing"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	a := constSound{dur: 2, values: []float64{0.1}}
	b := rampSound{dur: 3}

	seq, err := Append(a, b)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if seq.Duration() != 5 {
		t.Errorf("Duration() = %v, want 5 (sum of parts)", seq.Duration())
	}

	if got := seq.SampleAt(1)[0]; !approxEqual(got, 0.1) {
		t.Errorf("SampleAt(1) = %v, want first part", got)
	}
	// For t past a's duration, the sequence equals b at t-duration(a).
	for _, at := range []float64{2, 3.5, 4.9} {
		got := seq.SampleAt(at)
		want := b.SampleAt(at - 2)
		if !vectorEqual(got, want) {
			t.Errorf("SampleAt(%v) = %v, want %v", at, got, want)
		}
	}

	for _, at := range []float64{-1, 5, 6} {
		if got := seq.SampleAt(at); !vectorEqual(got, []float64{0}) {
			t.Errorf("SampleAt(%v) = %v, want zeros", at, got)
		}
	}
}

func TestAppend_BoundaryBelongsToLaterPart(t *testing.T) {
	t.Parallel()

	a := constSound{dur: 1, values: []float64{0.2}}
	b := constSound{dur: 1, values: []float64{0.8}}

	seq, err := Append(a, b)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// Intervals are half-open: the shared instant samples the later
	// part.
	if got := seq.SampleAt(1)[0]; !approxEqual(got, 0.8) {
		t.Errorf("SampleAt(1) = %v, want 0.8", got)
	}
}

func TestAppend_MonoBroadcast(t *testing.T) {
	t.Parallel()

	mono := constSound{dur: 1, values: []float64{0.5}}
	stereo := constSound{dur: 1, values: []float64{0.1, 0.9}}

	seq, err := Append(mono, stereo)
	if err != nil {
		t.Fatalf("Append(mono, stereo) error = %v", err)
	}

	if seq.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", seq.Channels())
	}
	if got := seq.SampleAt(0.5); !vectorEqual(got, []float64{0.5, 0.5}) {
		t.Errorf("SampleAt(0.5) = %v, want broadcast mono", got)
	}
	if got := seq.SampleAt(1.5); !vectorEqual(got, []float64{0.1, 0.9}) {
		t.Errorf("SampleAt(1.5) = %v, want stereo part", got)
	}
	// Out-of-range zeros match the composite's channel count, not
	// any single part's.
	if got := seq.SampleAt(9); !vectorEqual(got, []float64{0, 0}) {
		t.Errorf("SampleAt(9) = %v, want stereo zeros", got)
	}
}

func TestAppend_Validation(t *testing.T) {
	t.Parallel()

	if _, err := Append(); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Append() error = %v, want ErrPrecondition", err)
	}

	stereo := constSound{dur: 1, values: []float64{1, 1}}
	quad := constSound{dur: 1, values: []float64{1, 1, 1, 1}}
	if _, err := Append(stereo, quad); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("Append(2ch, 4ch) error = %v, want ErrChannelMismatch", err)
	}
}

func TestAppend_SingleSound(t *testing.T) {
	t.Parallel()

	src := rampSound{dur: 2}
	seq, err := Append(src)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if seq.Duration() != 2 {
		t.Errorf("Duration() = %v, want 2", seq.Duration())
	}
	if got := seq.SampleAt(1.5); !vectorEqual(got, []float64{1.5}) {
		t.Errorf("SampleAt(1.5) = %v, want [1.5]", got)
	}
}
