// SPDX-License-Identifier: EPL-2.0

// Package sound implements the lazy composition algebra at the heart
// of podmix.
//
// A Sound is a fixed duration plus a function from time to a
// per-channel amplitude vector. Nothing is materialized when sounds
// are composed; each combinator wraps its sources in a small struct
// and work only happens when SampleAt is called, recursing through
// the composition graph down to generator or file-backed leaves.
//
// # Building sounds
//
// Generators create leaves:
//
//	quiet, _ := sound.Silence(2)          // 2 s of mono silence
//	beep, _ := sound.Tone(0.5, 440)       // 440 Hz sine, half a second
//
// Combinators derive new sounds without touching the old ones:
//
//	intro, _ := sound.Trim(show, 0, "0:0:30")
//	faded, _ := sound.Fade(intro, []sound.ControlPoint{
//		{Gain: 1, At: 25},
//		{Gain: 0, At: 30},
//	})
//	both, _ := sound.Mix(faded, bed)
//	piece, _ := sound.Append(jingle, both, outro)
//
// Time-like arguments (durations, trim bounds, shift amounts, fade
// point times) accept anything timespec.Seconds does: raw seconds,
// timespec.HMS triples, or "H:M:S[.frac]" strings.
//
// # Contract
//
// For every Sound s and every t outside [0, s.Duration()),
// s.SampleAt(t) is a zero vector of s.Channels() values. Combinators
// rely on this: Mix sums its sources without duration checks and
// Append never special-cases a short tail.
//
// Sounds built from the generators here are immutable and safe for
// concurrent sampling. File-backed leaves (sndfile.Sound) are not;
// see that package.
//
// # Channel policy
//
// Mix and Append require their operands to agree on channel count,
// except that a mono operand is broadcast to the width of the rest.
// Pan insists on exactly two channels and ToStereo on one or two;
// both fail fast at construction with a wrapped
// ErrUnsupportedChannelLayout naming the offending count.
package sound
