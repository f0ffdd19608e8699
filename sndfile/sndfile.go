// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/podmix/audio"
)

// DefaultBufferSeconds is the window size used when Options leaves
// BufferSeconds zero.
const DefaultBufferSeconds = 10.0

// Options configures how a file is opened.
type Options struct {
	// BufferSeconds sizes the decode window. Larger windows cost
	// memory, smaller ones cost refills. 0 means
	// DefaultBufferSeconds.
	BufferSeconds float64

	// TargetRate, when non-zero, resamples the stream to this rate
	// before windowing, so every file in a composition can share one
	// rate.
	TargetRate int

	// Downmix collapses the stream to mono before windowing.
	Downmix bool

	// Registry overrides the decoder lookup. nil means
	// DefaultRegistry.
	Registry *audio.Registry
}

// Sound streams a file's PCM data through a fixed-size window buffer
// and exposes it with the sound.Sound capability. Forward-advancing
// sample times are cheap; sampling before the current window reopens
// the stream from the start. A Sound owns OS-level decode handles and
// must be closed; it is not safe for concurrent SampleAt calls.
type Sound struct {
	path string
	dec  audio.Decoder
	opts Options

	file *os.File
	raw  audio.Source // decoder output, before pipeline stages
	src  audio.Source

	rate     int
	channels int
	duration float64

	window    []float32 // interleaved frames, winStart..winEnd
	capFrames int
	winStart  int64
	winEnd    int64
	pos       int64 // frames consumed from the decode stream
	exhausted bool
	closed    bool

	refills int
	scratch []float32
	err     error
}

// Open opens path with default options.
func Open(path string) (*Sound, error) {
	return OpenOptions(path, Options{})
}

// OpenOptions opens an audio file as a windowed Sound. The decoder is
// chosen by file extension from the options' registry.
func OpenOptions(path string, opts Options) (*Sound, error) {
	if opts.BufferSeconds <= 0 {
		opts.BufferSeconds = DefaultBufferSeconds
	}

	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	s := &Sound{path: path, dec: dec, opts: opts}
	if err := s.openStream(); err != nil {
		return nil, err
	}

	if err := s.resolveDuration(); err != nil {
		s.closeStream()
		return nil, err
	}

	s.capFrames = int(opts.BufferSeconds * float64(s.rate))
	if s.capFrames < 1 {
		s.capFrames = 1
	}
	s.window = make([]float32, 0, s.capFrames*s.channels)
	// At least one frame, or the discard loop cannot make progress.
	s.scratch = make([]float32, max(s.src.BufSize(), s.channels))

	return s, nil
}

// openStream (re)opens the file and builds the decode pipeline,
// leaving the stream positioned at frame zero.
func (s *Sound) openStream() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}

	raw, err := s.dec.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", s.path, err)
	}

	src := audio.Pipeline(raw, s.opts.TargetRate, s.opts.Downmix)

	s.file = f
	s.raw = raw
	s.src = src
	s.rate = src.SampleRate()
	s.channels = src.Channels()
	s.pos = 0
	s.winStart = 0
	s.winEnd = 0
	s.exhausted = false

	return nil
}

// closeStream releases the pipeline and file handles. Close errors on
// teardown paths are deliberately dropped; the stream is read-only.
func (s *Sound) closeStream() {
	if s.src != nil {
		// Pipeline stages close through to the decoder source.
		s.src.Close()
		s.src = nil
		s.raw = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
}

// resolveDuration takes the total length from container metadata when
// the decoder knows it, and otherwise scans the stream once, counting
// frames, then reopens.
func (s *Sound) resolveDuration() error {
	// Pipeline stages hide the decoder's metadata, so ask the raw
	// decoder source. Duration in seconds is unaffected by
	// resampling or downmix.
	if d, ok := s.raw.(audio.Durationer); ok {
		if dur, err := d.Duration(); err == nil {
			s.duration = dur
			return nil
		}
	}

	buf := make([]float32, max(s.src.BufSize(), s.channels))
	var frames int64
	for {
		n, err := s.src.ReadSamples(buf)
		frames += int64(n / s.channels)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("scanning %s for duration: %w", s.path, err)
		}
		if n == 0 {
			break
		}
	}
	s.duration = float64(frames) / float64(s.rate)

	s.closeStream()
	return s.openStream()
}

// SampleRate of the decoded stream (after optional resampling).
func (s *Sound) SampleRate() int { return s.rate }

// Channels of the decoded stream (after optional downmix).
func (s *Sound) Channels() int { return s.channels }

// Duration of the file in seconds.
func (s *Sound) Duration() float64 { return s.duration }

// Err returns the first decode or I/O failure hit while sampling.
// End-of-stream is not a failure: a stream shorter than its declared
// duration just samples to zero. Errors are sticky like
// bufio.Scanner's; once set, out-of-window samples stay zero until
// the Sound is closed.
func (s *Sound) Err() error { return s.err }

// SampleAt returns one amplitude per channel at time t seconds.
// Outside [0, Duration()) it returns a zero vector without touching
// decoder state.
func (s *Sound) SampleAt(t float64) []float64 {
	out := make([]float64, s.channels)
	if s.closed || t < 0 || t >= s.duration {
		return out
	}

	target := int64(t * float64(s.rate))

	// Sampling before the window start is a backward seek: the only
	// way back is reopening the stream from frame zero.
	if target < s.winStart && !(s.winStart == 0 && s.winEnd == 0) {
		s.closeStream()
		if err := s.openStream(); err != nil {
			s.fail(err)
			return out
		}
	}

	if target >= s.winEnd {
		if s.exhausted || s.err != nil {
			return out
		}
		if !s.fill(target) {
			return out
		}
	}

	off := int(target-s.winStart) * s.channels
	for c := 0; c < s.channels; c++ {
		out[c] = float64(s.window[off+c])
	}

	return out
}

// fill advances the stream to target and reads one window's worth of
// frames. Reports whether the window now covers target.
func (s *Sound) fill(target int64) bool {
	// Frames between the stream position and the window we want
	// cannot be skipped by arithmetic; the decoder carries state, so
	// they are read and dropped.
	for s.pos < target {
		gap := target - s.pos
		want := int64(len(s.scratch) / s.channels)
		if want > gap {
			want = gap
		}
		n, err := s.src.ReadSamples(s.scratch[:want*int64(s.channels)])
		s.pos += int64(n / s.channels)
		if err == io.EOF || (n == 0 && err == nil) {
			s.exhausted = true
			return false
		}
		if err != nil {
			s.fail(fmt.Errorf("advancing %s: %w", s.path, err))
			return false
		}
	}

	want := s.capFrames * s.channels
	s.window = s.window[:0]
	filled := 0
	for filled < want {
		n, err := s.src.ReadSamples(s.window[filled : want:want])
		filled += n
		s.window = s.window[:filled]
		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			s.fail(fmt.Errorf("reading %s: %w", s.path, err))
			return false
		}
	}

	frames := int64(filled / s.channels)
	s.pos += frames
	s.winStart = target
	s.winEnd = target + frames
	if frames == 0 {
		s.exhausted = true
		return false
	}
	s.refills++

	return target < s.winEnd
}

func (s *Sound) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Close releases the decode pipeline and file handle. The Sound
// samples as silence afterwards. Close is idempotent.
func (s *Sound) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var srcErr, fileErr error
	if s.src != nil {
		srcErr = s.src.Close()
		s.src = nil
	}
	if s.file != nil {
		fileErr = s.file.Close()
		s.file = nil
	}

	if srcErr != nil {
		return fmt.Errorf("closing decoder for %s: %w", s.path, srcErr)
	}
	if fileErr != nil {
		return fmt.Errorf("closing %s: %w", s.path, fileErr)
	}

	return nil
}
