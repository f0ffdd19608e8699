// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams via github.com/hajimehoshi/go-mp3.
//
// go-mp3 emits 16-bit stereo PCM at the source sample rate, so this
// decoder always reports two channels; mono files come out with both
// channels equal. Duration is available when the input reader seeks
// (the library scans the stream length), otherwise Duration fails
// with audio.ErrUnknownDuration and callers fall back to counting
// frames.
package mp3
