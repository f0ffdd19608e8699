// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/podmix/utils"
)

// Resampler converts a source stream to another sample rate using
// Catmull-Rom cubic interpolation over a four-frame history. Channel
// count is preserved. When downsampling, a one-pole low-pass smooths
// the input to limit aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// history[0] is the frame before the interpolation segment,
	// history[1] and history[2] bracket it, history[3] follows it.
	history  [4][]float32
	haveHist bool
	pos      float64 // fractional position between history[1] and history[2]
	eof      bool

	frameBuf []float32

	lowpass  bool
	lpState  []float32
	lpFactor float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	step := float64(src.SampleRate()) / float64(dstRate)
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		lowpass:  step > 1,
		lpState:  make([]float32, channels),
		lpFactor: 0.5,
	}
	for i := range r.history {
		r.history[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame reads exactly one frame from the source into dst,
// applying the low-pass when active. Returns io.EOF once the source
// is drained.
func (r *Resampler) readFrame(dst []float32) error {
	if r.eof {
		return io.EOF
	}

	n, err := r.src.ReadSamples(r.frameBuf)
	if n < r.channels {
		r.eof = true
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading source frame: %w", err)
		}
		return io.EOF
	}

	copy(dst, r.frameBuf)
	if r.lowpass {
		for c := range dst {
			dst[c] = r.lpFactor*dst[c] + (1-r.lpFactor)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}
	if err == io.EOF {
		r.eof = true
	}

	return nil
}

// prime fills the history window with the first frames of the
// stream, duplicating the first frame into the lead slot.
func (r *Resampler) prime() error {
	if err := r.readFrame(r.history[1]); err != nil {
		return err
	}
	copy(r.history[0], r.history[1])
	copy(r.lpState, r.history[1])

	for i := 2; i < 4; i++ {
		if err := r.readFrame(r.history[i]); err != nil {
			copy(r.history[i], r.history[i-1])
		}
	}
	r.haveHist = true

	return nil
}

// advance shifts the history window forward by one source frame.
func (r *Resampler) advance() {
	copy(r.history[0], r.history[1])
	copy(r.history[1], r.history[2])
	copy(r.history[2], r.history[3])
	if err := r.readFrame(r.history[3]); err != nil {
		// Hold the last frame; the caller stops once pos runs past
		// the real data.
		copy(r.history[3], r.history[2])
	}
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.haveHist {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			if r.eof {
				if written == 0 {
					return 0, io.EOF
				}
				return written * r.channels, io.EOF
			}
			r.advance()
			r.pos--
		}

		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.history[0][c], r.history[1][c],
				r.history[2][c], r.history[3][c], x)
		}
		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
