// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/podmix/audio"
)

// fakeOgg stands in for oggvorbis.Reader: interleaved float32 values
// plus the metadata the real reader reports.
type fakeOgg struct {
	data       []float32
	pos        int
	sampleRate int
	channels   int
	length     int64
}

func (f *fakeOgg) SampleRate() int { return f.sampleRate }
func (f *fakeOgg) Channels() int   { return f.channels }
func (f *fakeOgg) Length() int64   { return f.length }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}

	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{sampleRate: 48000, channels: 2, length: 24000},
		sampleRate: 48000,
		channels:   2,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dur, err := src.Duration()
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if math.Abs(dur-0.5) > 1e-9 {
		t.Errorf("Duration() = %g, want 0.5", dur)
	}
}

func TestSource_UnknownDuration(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{sampleRate: 48000, channels: 1}, sampleRate: 48000, channels: 1}

	if _, err := src.Duration(); !errors.Is(err, audio.ErrUnknownDuration) {
		t.Errorf("Duration() error = %v, want %v", err, audio.ErrUnknownDuration)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := &source{
		dec:        &fakeOgg{data: data, sampleRate: 48000, channels: 2, length: 3},
		sampleRate: 48000,
		channels:   2,
	}

	var got []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(data) {
		t.Fatalf("read %d samples, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("sample %d = %g, want %g", i, got[i], data[i])
		}
	}
}

func TestSource_ReadSamplesWholeFrames(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2}
	src := &source{
		dec:        &fakeOgg{data: data, sampleRate: 48000, channels: 2, length: 2},
		sampleRate: 48000,
		channels:   2,
	}

	// An odd destination must be truncated to a whole frame.
	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ReadSamples() = %d, want 2", n)
	}
}
