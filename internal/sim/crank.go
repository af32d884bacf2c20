package sim

import "github.com/vovakirdan/bounce-kit/internal/core"

// Crank turns the handheld's rotary input into a clamped offset.
type Crank struct {
	Y        float64
	Min, Max float64
	Ratio    float64 // units moved per degree of crank
}

// Apply moves Y by delta degrees of crank rotation, staying in [Min, Max].
func (c *Crank) Apply(delta float64) {
	c.Y = core.ClampF(c.Y+delta*c.Ratio, c.Min, c.Max)
}
