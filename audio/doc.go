// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming PCM primitives underneath the
// podmix file decoder.
//
// The Source interface is a pull-based pipeline stage:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders (see the formats subpackages) produce Sources, and
// processing stages wrap them: Resampler changes the sample rate with
// cubic interpolation, MonoMixer averages channels down to one, and
// Pipeline chains both from a pair of options. Sources that can tell
// their total length from container metadata also implement
// Durationer.
//
// Samples are interleaved float32 values in [-1, 1]; reads always
// return whole frames, and a read of 0 with io.EOF ends the stream.
//
// The Registry maps file extensions to decoders so callers can pick
// a decoder from a path; sndfile.DefaultRegistry wires in every
// format this module ships.
package audio
