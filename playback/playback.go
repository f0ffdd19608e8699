// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/podmix/sound"
	"github.com/ik5/podmix/utils"
)

// NewReader renders s as a stream of interleaved 16-bit little-endian
// PCM at sampleRate, the wire format output devices and pipes expect.
// Reads always return whole frames.
func NewReader(s sound.Sound, sampleRate int) io.Reader {
	return &reader{
		src:    s,
		rate:   sampleRate,
		frames: int64(s.Duration() * float64(sampleRate)),
	}
}

type reader struct {
	src    sound.Sound
	rate   int
	frames int64
	next   int64
}

func (r *reader) Read(p []byte) (int, error) {
	if r.next >= r.frames {
		return 0, io.EOF
	}

	channels := r.src.Channels()
	frameBytes := channels * 2
	want := int64(len(p) / frameBytes)
	if want == 0 {
		return 0, nil
	}
	if rest := r.frames - r.next; want > rest {
		want = rest
	}

	n := 0
	for f := int64(0); f < want; f++ {
		t := float64(r.next) / float64(r.rate)
		for _, v := range r.src.SampleAt(t) {
			binary.LittleEndian.PutUint16(p[n:n+2], uint16(utils.Float64ToInt16(v)))
			n += 2
		}
		r.next++
	}

	return n, nil
}

// Play renders s on the default output device at sampleRate and
// blocks until the sound ends or ctx is canceled. Only mono and
// stereo sounds can reach a device.
func Play(ctx context.Context, s sound.Sound, sampleRate int) error {
	channels := s.Channels()
	if channels < 1 || channels > 2 {
		return fmt.Errorf("playback: got %d channels: %w", channels, sound.ErrUnsupportedChannelLayout)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("opening output device: %w", err)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	player := otoCtx.NewPlayer(NewReader(s, sampleRate))
	player.Play()

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Close()
			return ctx.Err()
		case <-tick.C:
		}
	}

	if err := player.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}

	return nil
}
