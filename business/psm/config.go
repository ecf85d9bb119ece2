package psm

import "time"

type Config struct {
	// number of evenly spaced samples over [0, 1]
	SampleCount int

	// half-width of the highlighted band around a picked score
	SelectionHalfWidth float64

	// how long a placeholder estimation keeps the session busy
	BusyDelay time.Duration
}

const (
	defaultSampleCount        = 50
	defaultSelectionHalfWidth = 0.05
	defaultBusyDelay          = 800 * time.Millisecond
)

func DefaultConfig() Config {
	return Config{
		SampleCount:        defaultSampleCount,
		SelectionHalfWidth: defaultSelectionHalfWidth,
		BusyDelay:          defaultBusyDelay,
	}
}

// withDefaults fills zero fields so a partially populated Config stays usable.
func (c Config) withDefaults() Config {
	if c.SampleCount < 2 {
		c.SampleCount = defaultSampleCount
	}
	if c.SelectionHalfWidth <= 0 {
		c.SelectionHalfWidth = defaultSelectionHalfWidth
	}
	if c.BusyDelay <= 0 {
		c.BusyDelay = defaultBusyDelay
	}
	return c
}
