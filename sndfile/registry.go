// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"sync"

	"github.com/ik5/podmix/audio"
	"github.com/ik5/podmix/formats/aiff"
	"github.com/ik5/podmix/formats/mp3"
	"github.com/ik5/podmix/formats/vorbis"
	"github.com/ik5/podmix/formats/wav"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry used when Options.Registry is
// nil, with every format this module decodes natively.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		reg := audio.NewRegistry()
		reg.Register("wav", wav.Decoder{})
		reg.Register("wave", wav.Decoder{})
		reg.Register("mp3", mp3.Decoder{})
		reg.Register("ogg", vorbis.Decoder{})
		reg.Register("oga", vorbis.Decoder{})
		reg.Register("aiff", aiff.Decoder{})
		reg.Register("aif", aiff.Decoder{})
		defaultRegistry = reg
	})

	return defaultRegistry
}
