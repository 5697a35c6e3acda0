package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/milk9111/minimap/assets/sfx"
)

const sampleRate = beep.SampleRate(44100)

// chime plays the coin pickup sound. A zero chime is silent.
type chime struct {
	ready bool
}

func newChime(mute bool) *chime {
	if mute {
		return &chime{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[audio] disabled: %v", err)
		return &chime{}
	}
	return &chime{ready: true}
}

func (c *chime) play() {
	if c == nil || !c.ready {
		return
	}
	tone, err := sfx.Chime(sampleRate)
	if err != nil {
		log.Printf("[audio] chime: %v", err)
		return
	}
	speaker.Play(tone)
}
