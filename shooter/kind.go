package shooter

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

type EnemyKind int

const (
	Basic EnemyKind = iota
	Weaver
	Tank

	numKinds
)

// Kinds lists every enemy kind in table order.
var Kinds = []EnemyKind{Basic, Weaver, Tank}

type attackSpec struct {
	// The enemy fires when its Timer is a multiple of period and a uniform
	// draw falls below chance.
	period int
	chance float64

	w, h  float64
	vy    float64
	color color.RGBA
}

type kindSpec struct {
	name string

	hp          int
	w, h        float64
	speedFactor float64
	drift       float64
	score       int
	color       color.RGBA

	// Spawner picks the eligible kind with the highest roll. A kind is
	// eligible when the spawn draw exceeds roll and the difficulty exceeds
	// minDifficulty.
	roll          float64
	minDifficulty float64

	move   func(e *Enemy, arenaWidth float64)
	attack *attackSpec
}

var kinds = [numKinds]kindSpec{
	Basic: {
		name:          "basic",
		hp:            1,
		w:             30,
		h:             30,
		speedFactor:   1.0,
		score:         10,
		color:         colornames.Crimson,
		roll:          math.Inf(-1),
		minDifficulty: math.Inf(-1),
		move:          moveStraight,
		attack: &attackSpec{
			period: 120,
			chance: 0.5,
			w:      6,
			h:      6,
			vy:     4,
			color:  colornames.Orangered,
		},
	},
	Weaver: {
		name:          "weaver",
		hp:            2,
		w:             30,
		h:             30,
		speedFactor:   1.3,
		drift:         2,
		score:         20,
		color:         colornames.Mediumpurple,
		roll:          0.5,
		minDifficulty: 1.1,
		move:          moveWeave,
	},
	Tank: {
		name:          "tank",
		hp:            5,
		w:             50,
		h:             50,
		speedFactor:   0.5,
		score:         50,
		color:         colornames.Darkorange,
		roll:          0.8,
		minDifficulty: 1.2,
		move:          moveStraight,
		attack: &attackSpec{
			period: 90,
			chance: 1,
			w:      10,
			h:      10,
			vy:     3,
			color:  colornames.Orange,
		},
	},
}

func (k EnemyKind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kinds[k].name
}

// Score is the award for destroying an enemy of kind k.
func (k EnemyKind) Score() int {
	return kinds[k].score
}

func (k EnemyKind) Color() color.RGBA {
	return kinds[k].color
}

func pickKind(r, difficulty float64) EnemyKind {
	picked, best := Basic, math.Inf(-1)
	for i, row := range kinds {
		if r > row.roll && difficulty > row.minDifficulty && row.roll > best {
			picked, best = EnemyKind(i), row.roll
		}
	}
	return picked
}

func moveStraight(e *Enemy, arenaWidth float64) {}

func moveWeave(e *Enemy, arenaWidth float64) {
	e.Pos.X += e.VX
	if e.Pos.X <= 0 {
		e.Pos.X = 0
		e.VX = math.Abs(e.VX)
	} else if e.Pos.X+e.W >= arenaWidth {
		e.Pos.X = arenaWidth - e.W
		e.VX = -math.Abs(e.VX)
	}
}
