// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Converter shells out to ffmpeg to turn arbitrary input media into
// 16-bit PCM WAV files the native decoders can read. Intermediate
// file names come from a counter owned by the Converter, so two
// Converters never race over names as long as they use different
// directories.
//
// A Converter is not safe for concurrent use.
type Converter struct {
	// FFmpeg is the binary to invoke. Empty means "ffmpeg" from
	// PATH.
	FFmpeg string

	// Dir receives the intermediate files. Empty means the system
	// temp directory.
	Dir string

	seq int
}

func (c *Converter) binary() string {
	if c.FFmpeg == "" {
		return "ffmpeg"
	}
	return c.FFmpeg
}

// next returns a fresh intermediate file path.
func (c *Converter) next() string {
	c.seq++
	return filepath.Join(c.Dir, fmt.Sprintf("podmix-%04d.wav", c.seq))
}

// ToWAV converts input into a 16-bit PCM WAV file and returns its
// path. The caller owns the resulting file. A non-zero ffmpeg exit
// surfaces as a *ProcessError carrying the command line and captured
// output.
func (c *Converter) ToWAV(ctx context.Context, input string) (string, error) {
	output := c.next()
	args := []string{"-y", "-i", input, "-acodec", "pcm_s16le", output}

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ProcessError{
				Path:     c.binary(),
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("running %s: %w", c.binary(), err)
	}

	return output, nil
}

// ProcessError reports a subprocess that exited non-zero, with
// enough context to reproduce the invocation by hand.
type ProcessError struct {
	Path     string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}

	return fmt.Sprintf("%s %s: exit status %d: %s",
		e.Path, strings.Join(e.Args, " "), e.ExitCode, msg)
}
