// Package sfx synthesizes the game's sound effects as beep streamers so the
// window and terminal front-ends share one definition.
package sfx

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Chime notes: a short B5 followed by a longer E6.
const (
	chimeLow       = 987.77
	chimeHigh      = 1318.51
	chimeLowFor    = 80 * time.Millisecond
	chimeHighFor   = 220 * time.Millisecond
	chimeAttenuate = -3
)

// Chime returns the coin pickup sound. Each call builds a fresh streamer.
func Chime(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, chimeLow)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(sr, chimeHigh)
	if err != nil {
		return nil, err
	}
	tone := beep.Seq(
		beep.Take(sr.N(chimeLowFor), low),
		beep.Take(sr.N(chimeHighFor), high),
	)
	return &effects.Volume{Streamer: tone, Base: 2, Volume: chimeAttenuate}, nil
}

// PCM drains s into signed 16-bit little-endian stereo, the byte layout an
// ebiten audio.Context plays directly.
func PCM(s beep.Streamer, sr beep.SampleRate) []byte {
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	frame := make([]byte, format.Width())
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

// ChimePCM is Chime rendered with PCM.
func ChimePCM(sampleRate int) ([]byte, error) {
	sr := beep.SampleRate(sampleRate)
	s, err := Chime(sr)
	if err != nil {
		return nil, err
	}
	return PCM(s, sr), nil
}
