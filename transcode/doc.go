// SPDX-License-Identifier: EPL-2.0

// Package transcode invokes ffmpeg to convert media the native
// decoders cannot read into 16-bit PCM WAV intermediates.
//
//	conv := &transcode.Converter{Dir: workDir}
//	wavPath, err := conv.ToWAV(ctx, "interview.m4a")
//
// The engine never transcodes in-process; this package is the
// boundary to the external tool, and its only error beyond plain
// invocation failures is *ProcessError, which captures the full
// command line, exit code, stdout and stderr of the failed run.
package transcode
