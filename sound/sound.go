// SPDX-License-Identifier: EPL-2.0

package sound

// Sound is a time-indexed sampling capability. Implementations are
// either pure value-like sounds (generators and combinators in this
// package) or stateful file-backed leaves (see the sndfile package).
type Sound interface {
	// Duration of the sound in seconds.
	Duration() float64
	// Channels in each sample vector. Fixed for the lifetime of
	// the instance.
	Channels() int
	// SampleAt returns one amplitude per channel at time t seconds.
	// For t outside [0, Duration()) it returns a zero vector and
	// never an error.
	SampleAt(t float64) []float64
}

// zeroVector returns an all-zero sample for n channels.
func zeroVector(n int) []float64 {
	return make([]float64, n)
}

// inRange reports whether t falls inside [0, d).
func inRange(t, d float64) bool {
	return t >= 0 && t < d
}
