// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownDuration indicates a source cannot report its length
	// from metadata (e.g., the underlying reader is not seekable).
	ErrUnknownDuration = errors.New("stream duration unknown")
)
