// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package ambient is the decorative "matrix rain" band shown above the
// terminal. It only produces cells; views decide how to colour them.
package ambient

import (
	"math/rand"
	"time"
)

const (
	// BaseSpeed is in cells per frame and deliberately slow.
	BaseSpeed = 0.9
	// FrameInterval is roughly 30 frames per second.
	FrameInterval = 33 * time.Millisecond
	trailLength   = 6
)

// Charset holds the glyphs a drop may show.
var Charset = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// Cell is one glyph with its brightness; 0 is empty and trailLength is the head.
type Cell struct {
	Rune  rune
	Level int
}

type drop struct {
	y     float64
	speed float64
	glyph []rune
}

// Rain keeps one drop per column.
type Rain struct {
	width, height int
	drops         []drop
	rng           *rand.Rand
	running       bool
}

func New(seed int64) *Rain {
	return &Rain{rng: rand.New(rand.NewSource(seed))}
}

// Resize rebuilds the columns when the band changes size.
func (r *Rain) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.drops = make([]drop, width)
	for i := range r.drops {
		r.drops[i] = r.spawn(true)
	}
}

func (r *Rain) spawn(scatter bool) drop {
	d := drop{
		speed: BaseSpeed * (0.5 + r.rng.Float64()*0.5),
		glyph: make([]rune, r.height+trailLength),
	}
	for i := range d.glyph {
		d.glyph[i] = Charset[r.rng.Intn(len(Charset))]
	}
	if scatter {
		d.y = -r.rng.Float64() * float64(r.height+trailLength)
	} else {
		d.y = -float64(r.rng.Intn(trailLength + 1))
	}
	return d
}

func (r *Rain) Start()        { r.running = true }
func (r *Rain) Stop()         { r.running = false }
func (r *Rain) Running() bool { return r.running }

// Step advances every drop by one frame. Stopped rain does not move.
func (r *Rain) Step() {
	if !r.running {
		return
	}
	for i := range r.drops {
		d := &r.drops[i]
		d.y += d.speed
		if int(d.y)-trailLength > r.height {
			r.drops[i] = r.spawn(false)
		}
	}
}

// Cells returns the band as rows of cells.
func (r *Rain) Cells() [][]Cell {
	rows := make([][]Cell, r.height)
	for y := range rows {
		rows[y] = make([]Cell, r.width)
	}
	for x, d := range r.drops {
		head := int(d.y)
		for k := 0; k < trailLength; k++ {
			y := head - k
			if y < 0 || y >= r.height {
				continue
			}
			rows[y][x] = Cell{Rune: d.glyph[y], Level: trailLength - k}
		}
	}
	return rows
}

// MaxLevel is the brightness of a drop head.
func MaxLevel() int { return trailLength }
