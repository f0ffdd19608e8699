// SPDX-License-Identifier: EPL-2.0

// Command podmix assembles an audio piece from a JSON script.
//
// A script lists segments that are appended in order; a segment with
// an "at" time is instead overlaid onto the piece built so far:
//
//	{
//	  "sample_rate": 44100,
//	  "output": "show.wav",
//	  "segments": [
//	    {"file": "intro.wav"},
//	    {"file": "episode.mp3", "start": "0:0:3", "end": "1:02:00",
//	     "fade": [{"gain": 1, "time": "1:01:30"}, {"gain": 0, "time": "1:02:00"}]},
//	    {"file": "bed.ogg", "at": "0:0:0", "pan": 0.5},
//	    {"silence": "2"},
//	    {"tone": {"duration": "0.5", "frequency": 440}}
//	  ]
//	}
//
// Files the native decoders cannot read are converted through ffmpeg
// first when -ffmpeg is enabled.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/podmix"
	"github.com/ik5/podmix/sndfile"
	"github.com/ik5/podmix/sound"
	"github.com/ik5/podmix/transcode"
	"github.com/ik5/podmix/waveform"
)

type script struct {
	SampleRate int       `json:"sample_rate"`
	Output     string    `json:"output"`
	Segments   []segment `json:"segments"`
}

type segment struct {
	File    string      `json:"file,omitempty"`
	Silence string      `json:"silence,omitempty"`
	Tone    *toneSpec   `json:"tone,omitempty"`
	Start   string      `json:"start,omitempty"`
	End     string      `json:"end,omitempty"`
	Fade    []fadePoint `json:"fade,omitempty"`
	Pan     *float64    `json:"pan,omitempty"`
	At      string      `json:"at,omitempty"`
}

type toneSpec struct {
	Duration  string  `json:"duration"`
	Frequency float64 `json:"frequency"`
}

type fadePoint struct {
	Gain float64 `json:"gain"`
	Time string  `json:"time"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "podmix:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("podmix", flag.ContinueOnError)
	scriptPath := fs.String("script", "", "JSON assembly script (required)")
	output := fs.String("out", "", "output WAV path (overrides the script)")
	rate := fs.Int("rate", 0, "output sample rate (overrides the script)")
	ffmpeg := fs.String("ffmpeg", "", "ffmpeg binary for non-native inputs (empty disables transcoding)")
	plot := fs.String("plot", "", "also write a time/amplitude TSV of channel 0 to this path")
	plotSteps := fs.Int("plot-steps", 2000, "number of points for -plot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scriptPath == "" {
		return fmt.Errorf("missing -script")
	}

	data, err := os.ReadFile(*scriptPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	if *output != "" {
		sc.Output = *output
	}
	if *rate != 0 {
		sc.SampleRate = *rate
	}
	if sc.Output == "" {
		return fmt.Errorf("no output path in script or -out")
	}
	if sc.SampleRate == 0 {
		sc.SampleRate = 44100
	}
	if len(sc.Segments) == 0 {
		return fmt.Errorf("script has no segments")
	}

	workDir, err := os.MkdirTemp("", "podmix-")
	if err != nil {
		return fmt.Errorf("creating work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	var conv *transcode.Converter
	if *ffmpeg != "" {
		conv = &transcode.Converter{FFmpeg: *ffmpeg, Dir: workDir}
	}

	asm := assembler{conv: conv}
	defer asm.close()

	piece, err := asm.assemble(&sc)
	if err != nil {
		return err
	}

	if err := podmix.WriteWAVFile(sc.Output, piece, sc.SampleRate); err != nil {
		return err
	}
	if err := asm.err(); err != nil {
		return fmt.Errorf("decode failure while rendering: %w", err)
	}

	if *plot != "" {
		f, err := os.Create(*plot)
		if err != nil {
			return fmt.Errorf("creating plot file: %w", err)
		}
		defer f.Close()
		if err := waveform.WriteTSV(f, piece, 0, *plotSteps); err != nil {
			return err
		}
	}

	return nil
}

// assembler builds the composition and tracks the file-backed leaves
// that need closing once rendering is done.
type assembler struct {
	conv  *transcode.Converter
	files []*sndfile.Sound
}

func (a *assembler) close() {
	for _, f := range a.files {
		f.Close()
	}
}

func (a *assembler) err() error {
	for _, f := range a.files {
		if err := f.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (a *assembler) assemble(sc *script) (sound.Sound, error) {
	var piece sound.Sound

	for i, seg := range sc.Segments {
		s, err := a.build(seg)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}

		switch {
		case piece == nil:
			piece, err = sound.Timeshift(s, orZero(seg.At))
		case seg.At != "":
			piece, err = sound.Overlay(piece, s, seg.At)
		default:
			piece, err = sound.Append(piece, s)
		}
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	return piece, nil
}

func orZero(at string) string {
	if at == "" {
		return "0"
	}
	return at
}

// build turns one segment into a stereo Sound.
func (a *assembler) build(seg segment) (sound.Sound, error) {
	src, err := a.open(seg)
	if err != nil {
		return nil, err
	}

	s, err := sound.ToStereo(src)
	if err != nil {
		return nil, err
	}

	if seg.Start != "" || seg.End != "" {
		start := orZero(seg.Start)
		end := any(seg.End)
		if seg.End == "" {
			end = s.Duration()
		}
		if s, err = sound.Trim(s, start, end); err != nil {
			return nil, err
		}
	}

	if len(seg.Fade) > 0 {
		points := make([]sound.ControlPoint, len(seg.Fade))
		for i, p := range seg.Fade {
			points[i] = sound.ControlPoint{Gain: p.Gain, At: p.Time}
		}
		if s, err = sound.Fade(s, points); err != nil {
			return nil, err
		}
	}

	if seg.Pan != nil {
		if s, err = sound.Pan(s, *seg.Pan); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (a *assembler) open(seg segment) (sound.Sound, error) {
	switch {
	case seg.Silence != "":
		return sound.Silence(seg.Silence)
	case seg.Tone != nil:
		return sound.Tone(seg.Tone.Duration, seg.Tone.Frequency)
	case seg.File != "":
		path := seg.File
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, native := sndfile.DefaultRegistry().Get(ext); !native {
			if a.conv == nil {
				return nil, fmt.Errorf("%w: %q (no -ffmpeg configured)", sndfile.ErrUnknownFormat, ext)
			}
			converted, err := a.conv.ToWAV(context.Background(), path)
			if err != nil {
				return nil, err
			}
			path = converted
		}

		f, err := sndfile.Open(path)
		if err != nil {
			return nil, err
		}
		a.files = append(a.files, f)
		return f, nil
	default:
		return nil, fmt.Errorf("segment needs a file, silence or tone")
	}
}
