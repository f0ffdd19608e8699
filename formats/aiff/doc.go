// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files via
// github.com/go-audio/aiff.
//
// The decoder needs random access; non-seekable readers are buffered
// in memory first. Duration comes from the COMM chunk through
// audio.Durationer.
package aiff
