package main

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/samber/lo"
	"github.com/tsujio/game-star-raid/shooter"
)

const sampleRate = 44100

type beep struct {
	freq     float64
	duration float64
	volume   float64
}

var beeps = map[shooter.EventKind]beep{
	shooter.EventFire:      {freq: 950, duration: 0.05, volume: 0.15},
	shooter.EventEnemyFire: {freq: 520, duration: 0.04, volume: 0.1},
	shooter.EventHit:       {freq: 700, duration: 0.05, volume: 0.25},
	shooter.EventKill:      {freq: 240, duration: 0.15, volume: 0.35},
	shooter.EventDamage:    {freq: 160, duration: 0.25, volume: 0.4},
	shooter.EventGameOver:  {freq: 110, duration: 0.6, volume: 0.4},
}

type sound struct {
	players map[shooter.EventKind]*audio.Player
}

func newSound() *sound {
	ctx := audio.NewContext(sampleRate)
	s := &sound{players: map[shooter.EventKind]*audio.Player{}}
	for kind, b := range beeps {
		s.players[kind] = ctx.NewPlayerFromBytes(b.pcm())
	}
	return s
}

// pcm synthesizes a sine wave as 16-bit little endian stereo samples with a
// linear fade out.
func (b beep) pcm() []byte {
	n := int(sampleRate * b.duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*b.freq*float64(i)/sampleRate) * b.volume * env
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}

// playEvents plays one beep per kind of event in events.
func (s *sound) playEvents(events []shooter.Event) {
	if s == nil {
		return
	}
	kinds := lo.Uniq(lo.Map(events, func(e shooter.Event, _ int) shooter.EventKind {
		return e.Kind
	}))
	for _, k := range kinds {
		p, ok := s.players[k]
		if !ok {
			continue
		}
		if err := p.SetPosition(0); err != nil {
			log.Printf("failed to rewind %v beep: %v", k, err)
			continue
		}
		p.Play()
	}
}
