// Package core provides fundamental types and utilities for the runner.
// It contains no terminal or audio dependencies so the simulation stays
// pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a world-space position or extent. +Y is up, +Z points toward the camera.
type Vec3 = mgl64.Vec3

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min, Max Vec3
}

// BoxAround returns the box centered on c with the given half extents.
func BoxAround(c, half Vec3) Box {
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersects reports whether the two boxes overlap.
// Touching faces count as an intersection, matching the usual AABB test
// used by scene graphs.
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// RotatedExtentsY returns the half extents of the axis-aligned box that
// encloses a box with half extents half after rotating it by angle radians
// about the Y axis.
func RotatedExtentsY(half Vec3, angle float64) Vec3 {
	m := mgl64.Rotate3DY(angle)
	for i := range m {
		m[i] = math.Abs(m[i])
	}
	return m.Mul3x1(half)
}

// Damp moves current toward target with exponential decay at rate lambda.
// The result is independent of how a time span is split into dt steps.
func Damp(current, target, lambda, dt float64) float64 {
	return target + (current-target)*math.Exp(-lambda*dt)
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
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
