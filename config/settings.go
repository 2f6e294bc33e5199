package config

// SavedSettings represents the user preferences stored on disk
type SavedSettings struct {
	ReducedMotion bool    `json:"reducedMotion"`
	TouchMode     bool    `json:"touchMode"`
	Particles     bool    `json:"particles"`
	Density       float64 `json:"density"`
}

// DensitySteps are the particle density multipliers the menu cycles through
var DensitySteps = []float64{0.5, 0.75, 1.0}

// DefaultSettings returns the settings used when nothing is saved yet
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		Particles: true,
		Density:   1.0,
	}
}
