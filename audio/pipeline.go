// SPDX-License-Identifier: EPL-2.0

package audio

// Pipeline wraps src with the standardization stages the caller asks
// for: a cubic resampler when targetRate differs from the source
// rate, then a mono downmix. Either may be skipped; with targetRate 0
// and downmix false the source is returned as-is.
//
// Closing the returned Source closes src.
func Pipeline(src Source, targetRate int, downmix bool) Source {
	out := src
	if targetRate > 0 && targetRate != src.SampleRate() {
		out = NewResampler(out, targetRate)
	}
	if downmix && out.Channels() > 1 {
		out = NewMonoMixer(out)
	}

	return out
}
