// SPDX-License-Identifier: EPL-2.0

// Package sndfile turns an on-disk audio file into a sound.Sound by
// windowed, seek-aware PCM streaming.
//
// A Sound keeps a fixed-size window of decoded frames in memory
// (10 seconds by default). Sampling inside the window is an index
// into the buffer; sampling past it advances the stream, discarding
// the frames in between, and refills the window starting at the
// requested frame. A forward scan over a whole file therefore costs
// one refill per window, not one read per sample. Sampling before
// the window is strictly more expensive: the decode stream carries
// its own position, so the only way back is reopening the file and
// decoding from the start. Avoid backward jumps in hot paths.
//
//	s, err := sndfile.Open("episode.mp3")
//	if err != nil { ... }
//	defer s.Close()
//
//	v := s.SampleAt(12.5) // one value per channel, in [-1, 1)
//
// Reaching end-of-stream is not an error: a Sound whose file runs
// short just samples to zero from there on. Real decode failures
// park the Sound in a zero-sampling state and are reported by Err.
//
// A Sound owns OS-level handles and must be closed exactly once.
// Its window and stream cursor are unsynchronized mutable state;
// concurrent SampleAt calls need external locking or one Sound per
// goroutine. The pure algebra in the sound package has neither
// restriction.
//
// Options.TargetRate and Options.Downmix insert the audio package's
// resampler and mono mixer between the decoder and the window, for
// compositions that want every file on one rate or channel layout.
package sndfile
