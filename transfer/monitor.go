package transfer

import (
	"math"
	"time"
)

// Estimate is the progress figure derived from one tick.
type Estimate struct {
	// Fraction is position/total, within [0, 1].
	Fraction float64

	// ETA is the estimated total duration of the transfer in whole seconds.
	ETA int
}

// OnTick computes the completed fraction and the estimated total duration.
// It never formats anything and keeps no state. A zero position yields a zero
// estimate instead of dividing.
func OnTick(position, total int, elapsed float64, _ time.Time) Estimate {
	if total <= 0 || position <= 0 {
		return Estimate{}
	}

	return Estimate{
		Fraction: float64(position) / float64(total),
		ETA:      int(math.Floor(elapsed * float64(total) / float64(position))),
	}
}
