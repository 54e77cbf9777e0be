package game

import "time"

// Rand is the random source used for spawn sampling and theme selection.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform samples [min, max).
func uniform(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// uniformDuration samples [min, max).
func uniformDuration(r Rand, min, max time.Duration) time.Duration {
	d := min + time.Duration(r.Float64()*float64(max-min))
	if d >= max {
		// float rounding at the top of the range
		d = max - 1
	}
	return d
}
