// Package sim implements the per-frame simulation shared by every demo: the
// bouncing body, the decay pulse that drives the impact wobble, and the
// particle burst emitter.
//
// Everything here is single-threaded and host-independent. Hosts call the
// update functions once per tick and read the state back when drawing.
package sim

import "github.com/vovakirdan/bounce-kit/internal/core"

// Side identifies which screen edge a body hit.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side is a vertical wall hit by x motion.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Body is a moving axis-aligned sprite. Pos is the top-left corner.
type Body struct {
	Pos  core.Vec2
	Vel  core.Vec2 // units per second
	Size core.Vec2
}

// Rect returns the body's bounding box.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// Center returns the centre of the body.
func (b Body) Center() core.Vec2 {
	return b.Rect().Center()
}

// Bounds is the screen area a body bounces inside, anchored at the origin.
type Bounds struct {
	W, H float64
}

// Collision is reported once per axis per tick when the body touches an edge.
type Collision struct {
	Side  Side
	Point core.Vec2 // on the screen edge, centred on the body's other axis
}

// Step advances b by dt seconds and reflects it off the edges of bounds.
//
// Each axis is tested independently, so a corner hit yields two collisions.
// After Step the body always lies inside [0, W-w] x [0, H-h].
func Step(b *Body, bounds Bounds, dt float64) []Collision {
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	maxX := max(bounds.W-b.Size.X, 0)
	maxY := max(bounds.H-b.Size.Y, 0)

	xSide, xHit := reflect(&b.Pos.X, &b.Vel.X, maxX, SideLeft, SideRight)
	ySide, yHit := reflect(&b.Pos.Y, &b.Vel.Y, maxY, SideTop, SideBottom)

	// Points use the resolved position so a corner hit stays on screen.
	var hits []Collision
	if xHit {
		edge := 0.0
		if xSide == SideRight {
			edge = bounds.W
		}
		hits = append(hits, Collision{
			Side:  xSide,
			Point: core.Vec2{X: edge, Y: b.Pos.Y + b.Size.Y/2},
		})
	}
	if yHit {
		edge := 0.0
		if ySide == SideBottom {
			edge = bounds.H
		}
		hits = append(hits, Collision{
			Side:  ySide,
			Point: core.Vec2{X: b.Pos.X + b.Size.X/2, Y: edge},
		})
	}

	return hits
}

// reflect resolves one axis. Contact counts only while moving toward the
// edge, so a body resting on an edge with zero or outward velocity is quiet.
// The position is clamped into [0, hi] whether or not a collision fired.
func reflect(pos, vel *float64, hi float64, low, high Side) (Side, bool) {
	switch {
	case *pos <= 0 && *vel < 0:
		*vel = -*vel
		*pos = 0
		return low, true
	case *pos >= hi && *vel > 0:
		*vel = -*vel
		*pos = hi
		return high, true
	}
	*pos = core.ClampF(*pos, 0, hi)
	return low, false
}
