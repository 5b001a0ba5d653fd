// Package engine implements the fixed-timestep motion-and-collision
// simulation shared by the arcade games: pooled entities, a uniform
// spatial grid for broad-phase queries, per-kind motion rules, a
// collision resolver with type-tagged outcomes, and the session frame
// driver that runs the tick phases in order.
//
// The engine is purely computational: it consumes a per-tick control
// vector and emits discrete events. Rendering, persistence, and input
// mapping live in the platform layer.
package engine

import "math"

// Clamp restricts a value to [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// DistanceSq returns the squared distance, avoiding the sqrt when only
// comparisons are needed.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, diff)
}

// EaseOutQuad decelerates towards the end of the range.
func EaseOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * (2 - t)
}

// EaseOutCubic decelerates harder than EaseOutQuad.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1) - 1
	return t*t*t + 1
}

// EaseInOut accelerates then decelerates across the range.
func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
