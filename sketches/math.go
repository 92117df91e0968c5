package sketches

import "math"

const twoPi = 2 * math.Pi

// remap maps v linearly from [lo1, hi1] onto [lo2, hi2] without clamping.
func remap(v, lo1, hi1, lo2, hi2 float64) float64 {
	return lo2 + (v-lo1)/(hi1-lo1)*(hi2-lo2)
}

func constrain(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
