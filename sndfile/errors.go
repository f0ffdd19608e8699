// SPDX-License-Identifier: EPL-2.0

package sndfile

import "errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for the
	// file's extension.
	ErrUnknownFormat = errors.New("unknown audio format")
)
