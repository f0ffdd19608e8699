// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a streaming PCM decode pipeline stage.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns the number of float32 values written, always a whole
	// number of frames. When n == 0 with err == io.EOF, the stream is
	// finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the source's preferred read size in samples.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Durationer is implemented by sources that know their total stream
// length from container metadata, without scanning the data.
type Durationer interface {
	// Duration of the stream in seconds.
	Duration() (float64, error)
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps lowercase file extensions (without the dot) to
// decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[ext]
	return d, ok
}

// Extensions returns the registered extensions in no particular
// order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}

	return exts
}
