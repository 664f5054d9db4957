package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/lo"
	"github.com/tsujio/game-star-raid/shooter"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[shooter.EventKind]tone{
	shooter.EventFire:     {950, 40 * time.Millisecond},
	shooter.EventHit:      {700, 50 * time.Millisecond},
	shooter.EventKill:     {240, 150 * time.Millisecond},
	shooter.EventDamage:   {160, 250 * time.Millisecond},
	shooter.EventGameOver: {110, 600 * time.Millisecond},
}

// sound mixes short sine tones for tick events.
type sound struct {
	mixer *beep.Mixer
}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &sound{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *sound) playEvents(events []shooter.Event) {
	if s == nil {
		return
	}
	kinds := lo.Uniq(lo.Map(events, func(e shooter.Event, _ int) shooter.EventKind {
		return e.Kind
	}))

	speaker.Lock()
	defer speaker.Unlock()
	for _, k := range kinds {
		t, ok := tones[k]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		s.mixer.Add(&effects.Gain{
			Streamer: beep.Take(sampleRate.N(t.duration), sine),
			Gain:     -0.7,
		})
	}
}

func (s *sound) close() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
