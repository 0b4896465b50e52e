// Package core provides fundamental types and utilities for the junkover platform.
// It has no terminal or engine dependencies, keeping scene logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or displacement in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Bounds is a closed world-space rectangle [MinX, MaxX] x [MinY, MaxY].
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp restricts each axis of p independently to the bounds.
// Clamping is idempotent: Clamp(Clamp(p)) == Clamp(p).
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, b.MinX, b.MaxX),
		Y: ClampF(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether p lies inside the closed bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Box is a world-space axis-aligned box centered on a point.
type Box struct {
	Center Vec2
	W, H   float64
}

// Overlaps reports whether two centered boxes intersect with positive area.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X)*2 < b.W+o.W &&
		math.Abs(b.Center.Y-o.Center.Y)*2 < b.H+o.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
