// Package core provides fundamental types and utilities shared by the game
// core, the stage collaborator and the terminal front-end.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement on the playfield.
// The playfield origin is the bottom-left corner; Y grows upward.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vec, t float64) Vec {
	t = ClampF(t, 0, 1)
	return a.Add(b.Sub(a).Scale(t))
}

// Box is an axis-aligned bounding box described by its center and size.
// Used for contact detection between bodies.
type Box struct {
	Center Vec
	W, H   float64
}

// NewBox creates a box centered at c.
func NewBox(c Vec, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.W/2, Y: b.Center.Y - b.H/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.W/2, Y: b.Center.Y + b.H/2}
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := other.Min(), other.Max()
	if bmin.X >= omax.X || omin.X >= bmax.X {
		return false
	}
	if bmin.Y >= omax.Y || omin.Y >= bmax.Y {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box (max edges exclusive).
func (b Box) Contains(p Vec) bool {
	bmin, bmax := b.Min(), b.Max()
	return p.X >= bmin.X && p.X < bmax.X && p.Y >= bmin.Y && p.Y < bmax.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
