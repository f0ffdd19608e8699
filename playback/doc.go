// SPDX-License-Identifier: EPL-2.0

// Package playback plays composed sounds on the default output
// device via github.com/ebitengine/oto. NewReader is also useful on
// its own, turning any sound.Sound into a 16-bit PCM byte stream.
package playback
