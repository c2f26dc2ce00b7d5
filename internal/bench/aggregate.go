package bench

import (
	"errors"
	"time"
)

// ErrNoSamples is returned when aggregating an empty sample list
var ErrNoSamples = errors.New("bench: no samples to aggregate")

// Mean holds the per-position means of a sample list
type Mean struct {
	InitialRender time.Duration
	Update        time.Duration
}

// Aggregate returns the arithmetic mean of each position of samples. At
// least one sample is required.
func Aggregate(samples []Sample) (Mean, error) {
	if len(samples) == 0 {
		return Mean{}, ErrNoSamples
	}

	var initial, update time.Duration
	for _, s := range samples {
		initial += s.InitialRender
		update += s.Update
	}

	n := time.Duration(len(samples))
	return Mean{
		InitialRender: initial / n,
		Update:        update / n,
	}, nil
}

// Milliseconds returns both means in fractional milliseconds
func (m Mean) Milliseconds() (initialRender, update float64) {
	return ms(m.InitialRender), ms(m.Update)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
