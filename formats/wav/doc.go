// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM WAV streams.
//
// Decoding is built on github.com/go-audio/wav, which walks the RIFF
// chunk tree, so files with extra metadata chunks before the data
// chunk decode fine. The decoder reports stream duration from the
// container header via audio.Durationer.
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// WriteWAV16 writes interleaved 16-bit samples back out as a
// canonical 44-byte-header WAV:
//
//	err := wav.WriteWAV16(out, 44100, 2, samples)
//
// Only 16-bit PCM is supported in either direction; other encodings
// fail with ErrOnlyPCM16bitSupported.
package wav
