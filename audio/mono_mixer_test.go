// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	mono := NewMonoMixer(src)

	if mono.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
}

func TestMonoMixer_AveragesStereo(t *testing.T) {
	t.Parallel()

	// Left channel 0.8, right channel 0.2: the mix is 0.5.
	src := newMockSource(8000, 2, 100, func(_, channel int) float32 {
		if channel == 0 {
			return 0.8
		}
		return 0.2
	})
	mono := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() = %d, want 100", n)
	}
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-0.5)) > 1e-6 {
			t.Fatalf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 50, 0.25)
	mono := NewMonoMixer(src)

	buf := make([]float32, 50)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 50 {
		t.Fatalf("ReadSamples() = %d, want 50", n)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0.25 {
			t.Fatalf("buf[%d] = %v, want 0.25", i, buf[i])
		}
	}
}

func TestMonoMixer_QuadDownmix(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 10, func(_, channel int) float32 {
		return float32(channel) // 0, 1, 2, 3 -> mean 1.5
	})
	mono := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, _ := mono.ReadSamples(buf)
	if n != 10 {
		t.Fatalf("ReadSamples() = %d, want 10", n)
	}
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-1.5)) > 1e-6 {
			t.Fatalf("buf[%d] = %v, want 1.5", i, buf[i])
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 10)
	mono := NewMonoMixer(src)

	buf := make([]float32, 64)
	for {
		n, err := mono.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			t.Fatal("ReadSamples() returned 0 with nil error")
		}
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 10)
	mono := NewMonoMixer(src)

	if err := mono.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the source")
	}
}
