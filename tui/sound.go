package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	stepTone     = 880
	arrivalTone  = 1320
	toneDuration = 40 * time.Millisecond
)

// Sound plays a short click for each mouse step. A nil or disabled Sound
// is silent.
type Sound struct {
	enabled bool
}

// NewSound initializes the speaker when enabled is true. On failure it
// returns a silent Sound together with the error; the simulator runs fine
// without audio.
func NewSound(enabled bool) (*Sound, error) {
	if !enabled {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{enabled: true}, nil
}

// Step plays the per-step click.
func (s *Sound) Step() { s.tone(stepTone) }

// Arrive plays the higher tone used when the mouse reaches the end.
func (s *Sound) Arrive() { s.tone(arrivalTone) }

func (s *Sound) tone(freq int) {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s != nil && s.enabled {
		speaker.Close()
	}
}
