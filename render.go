// SPDX-License-Identifier: EPL-2.0

package podmix

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/podmix/formats/wav"
	"github.com/ik5/podmix/sound"
	"github.com/ik5/podmix/utils"
)

// RenderPCM16 samples s at the given rate over its whole duration
// and returns interleaved 16-bit PCM. Each channel value is clamped
// to [-1, 1] and scaled by 32767.
//
// Rendering pulls samples at monotonically increasing times, the
// cheap direction for file-backed sounds.
func RenderPCM16(s sound.Sound, sampleRate int) []int16 {
	frames := int(s.Duration() * float64(sampleRate))
	channels := s.Channels()
	pcm := make([]int16, 0, frames*channels)

	for f := 0; f < frames; f++ {
		t := float64(f) / float64(sampleRate)
		for _, v := range s.SampleAt(t) {
			pcm = append(pcm, utils.Float64ToInt16(v))
		}
	}

	return pcm
}

// EncodeWAV renders s at sampleRate and writes it to w as a 16-bit
// PCM WAV stream.
func EncodeWAV(w io.Writer, s sound.Sound, sampleRate int) error {
	pcm := RenderPCM16(s, sampleRate)
	if err := wav.WriteWAV16(w, sampleRate, s.Channels(), pcm); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	return nil
}

// WriteWAVFile renders s at sampleRate into a WAV file at path.
func WriteWAVFile(path string, s sound.Sound, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := EncodeWAV(f, s, sampleRate); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
