// SPDX-License-Identifier: EPL-2.0

// Package podmix assembles audio pieces from lazily composed sounds.
//
// A piece is built as a graph of sound.Sound values: file-backed
// leaves from the sndfile package, generated leaves (silence, tones)
// and combinators (trim, fade, pan, mix, append, timeshift) from the
// sound package. Nothing is decoded or summed until the graph is
// sampled.
//
// # Quick start
//
//	intro, err := sndfile.Open("intro.wav")
//	if err != nil {
//	    ...
//	}
//	defer intro.Close()
//
//	episode, err := sndfile.Open("episode.mp3")
//	if err != nil {
//	    ...
//	}
//	defer episode.Close()
//
//	stereoEpisode, _ := sound.ToStereo(episode)
//	faded, _ := sound.Fade(stereoEpisode, []sound.ControlPoint{
//	    {Gain: 1, At: "0:58:00"},
//	    {Gain: 0, At: "1:00:00"},
//	})
//	piece, _ := sound.Append(intro, faded)
//
//	err = podmix.WriteWAVFile("show.wav", piece, 44100)
//
// # Supported formats
//
// The file decoder reads WAV, MP3, Ogg Vorbis and AIFF natively; the
// transcode package shells out to ffmpeg for everything else,
// producing WAV intermediates.
//
// # Subpackages
//
//   - sound: the composition algebra
//   - sndfile: buffered file-backed sounds
//   - timespec: time value normalization
//   - audio, formats/*: the streaming decode pipeline
//   - transcode: ffmpeg subprocess wrapper
//   - playback: output-device playback
//   - waveform: sampling for plots and summaries
//
// The root package holds the rendering convenience functions that
// turn a composed Sound into 16-bit PCM or a WAV file.
package podmix
