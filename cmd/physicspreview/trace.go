package main

import (
	"image/color"

	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/scenario"
	"github.com/pthm-cable/playground/sim"
)

// Point is a body center in world coordinates.
type Point struct {
	X, Y float32
}

// Trace is the recorded path of the first body in a scenario.
type Trace struct {
	Name     string
	Color    color.RGBA
	Points   []Point
	Bounces  int
	RestTick int64 // First tick at rest on the floor, -1 if never
	Travel   float32
}

// TraceAll records the drop and throw scenarios under cfg.
func TraceAll(cfg *config.Config, ticks int64) []Trace {
	return []Trace{
		TraceScenario(cfg, scenario.Drop(100, 100), ticks, color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}),
		TraceScenario(cfg, scenario.Throw(100, 400, 40, -20), ticks, color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}),
	}
}

// TraceScenario plays sc for ticks and records the first body's center each tick.
func TraceScenario(cfg *config.Config, sc scenario.Scenario, ticks int64, c color.RGBA) Trace {
	s := sim.New(cfg, sim.Options{})
	p := scenario.NewPlayer(sc)
	tr := Trace{Name: sc.Name, Color: c, RestTick: -1}

	var startX float32
	falling := false
	for s.Tick() < ticks {
		p.Advance(s, s.Tick())
		s.Step()

		snap := s.Snapshot()
		if len(snap.Bodies) == 0 {
			continue
		}
		b := snap.Bodies[0]
		if len(tr.Points) == 0 {
			startX = b.X
		}
		tr.Points = append(tr.Points, Point{X: b.X + b.W/2, Y: b.Y + b.H/2})
		tr.Travel = b.X - startX

		if b.VY > 0 {
			falling = true
		} else if falling && b.VY < 0 {
			falling = false
			tr.Bounces++
		}
		if tr.RestTick < 0 && p.Done() && b.VX == 0 && b.VY == 0 && b.Y+b.H >= cfg.Derived.WorldH32 {
			tr.RestTick = s.Tick()
		}
	}
	return tr
}
