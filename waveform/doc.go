// SPDX-License-Identifier: EPL-2.0

// Package waveform samples sounds at a fixed step count for plotting
// and quick numeric summaries. It is a read-only consumer of the
// sound.Sound contract.
package waveform
