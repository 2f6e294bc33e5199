package fxmath

// Lerp moves current toward target by factor (exponential smoothing step).
func Lerp(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp clamps a value to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Wrap maps v into the half-open interval [0, limit) by shifting whole
// periods. Used for particle boundary wraparound, not clamping.
func Wrap(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	for v < 0 {
		v += limit
	}
	for v >= limit {
		v -= limit
	}
	return v
}

// DistSq returns the squared distance between two points.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
