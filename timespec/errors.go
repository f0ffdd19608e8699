// SPDX-License-Identifier: EPL-2.0

package timespec

import "errors"

var (
	// ErrTimeParse indicates a value is not a number, HMS triple,
	// or well-formed clock string.
	ErrTimeParse = errors.New("cannot parse time value")
)
