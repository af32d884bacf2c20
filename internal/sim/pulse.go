package sim

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultDecayRate is how much pulse is lost per second.
const DefaultDecayRate = 1.2

// Pulse is a scalar in [0, 1] that snaps to 1 on impact and decays linearly
// back to 0. Demos map it through an easing curve to drive a wobble.
type Pulse struct {
	value float64
	rate  float64
}

// NewPulse returns a resting pulse that decays at rate per second.
// A non-positive rate falls back to DefaultDecayRate.
func NewPulse(rate float64) *Pulse {
	if rate <= 0 {
		rate = DefaultDecayRate
	}
	return &Pulse{rate: rate}
}

// Impact restarts the pulse at 1, discarding any decay in progress.
func (p *Pulse) Impact() {
	p.value = 1
}

// Tick decays the pulse by dt seconds. The value never drops below 0.
func (p *Pulse) Tick(dt float64) {
	if p.value <= 0 || dt <= 0 {
		return
	}
	p.value -= dt * p.rate
	if p.value < 0 {
		p.value = 0
	}
}

// Value returns the current pulse in [0, 1].
func (p *Pulse) Value() float64 {
	return p.value
}

// Rate returns the decay rate per second.
func (p *Pulse) Rate() float64 {
	return p.rate
}

// Wobble eases the pulse through fn. It is 1 right after an impact and 0 at
// rest; overshooting curves such as out-elastic swing past 0 on the way.
func (p *Pulse) Wobble(fn ease.TweenFunc) float64 {
	if fn == nil {
		return p.value
	}
	return 1 - float64(fn(float32(1-p.value), 0, 1, 1))
}

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"out-quad":    ease.OutQuad,
	"out-cubic":   ease.OutCubic,
	"out-sine":    ease.OutSine,
	"out-expo":    ease.OutExpo,
	"out-back":    ease.OutBack,
	"out-bounce":  ease.OutBounce,
	"out-elastic": ease.OutElastic,
}

// DefaultEasing is the curve used when a config leaves easing empty.
const DefaultEasing = "out-elastic"

// Easing looks up an ease-out curve by name.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (available: %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames returns the known easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
