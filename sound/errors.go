// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrUnsupportedChannelLayout indicates a channel-count-sensitive
	// operation received a sound with a channel count it cannot handle.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")

	// ErrChannelMismatch indicates two composed sounds disagree on
	// channel count and neither is mono.
	ErrChannelMismatch = errors.New("channel count mismatch")

	// ErrPrecondition indicates a combinator's documented
	// precondition was not met.
	ErrPrecondition = errors.New("precondition violated")
)
