// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams via
// github.com/jfreymuth/oggvorbis.
//
// The library already produces interleaved float32 samples in
// [-1, 1], so this wrapper only adapts the read contract and exposes
// stream duration (known for seekable inputs) through
// audio.Durationer.
package vorbis
