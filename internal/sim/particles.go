package sim

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Particle holds per-particle simulation state.
type Particle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Age    float64 // seconds since spawn
	MaxAge float64 // age at which the particle expires

	start, end color.RGBA
}

// Life returns the remaining fraction of the particle's lifetime in [0, 1].
func (p *Particle) Life() float64 {
	if p.MaxAge <= 0 {
		return 0
	}
	return core.ClampF((p.MaxAge-p.Age)/p.MaxAge, 0, 1)
}

// Alpha returns 255 scaled by the remaining lifetime.
func (p *Particle) Alpha() uint8 {
	return uint8(math.Round(255 * p.Life()))
}

// Color interpolates from the start to the end tint over the particle's
// lifetime and carries Alpha. The result is not premultiplied.
func (p *Particle) Color() color.RGBA {
	t := 1 - p.Life()
	return color.RGBA{
		R: lerp8(p.start.R, p.end.R, t),
		G: lerp8(p.start.G, p.end.G, t),
		B: lerp8(p.start.B, p.end.B, t),
		A: p.Alpha(),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(core.Lerp(float64(a), float64(b), t)))
}

// EmitterConfig controls how bursts are spawned and how particles behave.
type EmitterConfig struct {
	// Burst is the particle count drawn by BurstDefault.
	Burst core.IntRange
	// Capacity caps the live particle count; the oldest particles are
	// evicted to make room. 0 means unbounded.
	Capacity int
	// Speed is the range of initial speeds in units per second.
	Speed core.Range
	// Angle is the range of emission angles in radians.
	Angle core.Range
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime core.Range
	// Offset is the range of spawn distances from the burst origin, along
	// the emission angle.
	Offset core.Range
	// Damping multiplies the velocity once per tick.
	Damping float64
	// Gravity is a constant acceleration in units per second squared.
	Gravity core.Vec2
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	StartColor color.RGBA
	// EndColor is the tint at death.
	EndColor color.RGBA
}

// Emitter owns a set of short-lived particles. Particles are kept in spawn
// order, oldest first.
type Emitter struct {
	config    EmitterConfig
	particles []Particle
	rng       *rand.Rand
}

// NewEmitter creates an emitter drawing its randomness from rng.
func NewEmitter(cfg EmitterConfig, rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = core.NewRand(1)
	}
	initial := cfg.Capacity
	if initial <= 0 {
		initial = 64
	}
	return &Emitter{
		config:    cfg,
		particles: make([]Particle, 0, initial),
		rng:       rng,
	}
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Particles returns the live particles, oldest first. The returned slice
// MUST NOT be retained past the next Burst or Tick.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Reset kills all live particles.
func (e *Emitter) Reset() {
	e.particles = e.particles[:0]
}

// BurstDefault spawns a burst sized by the configured Burst range.
func (e *Emitter) BurstDefault(origin core.Vec2) int {
	n := e.config.Burst.Random(e.rng)
	e.Burst(origin, n)
	return n
}

// Burst spawns exactly count particles at origin. When the emitter has a
// capacity, the oldest particles are evicted to stay within it.
func (e *Emitter) Burst(origin core.Vec2, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		e.particles = append(e.particles, e.spawn(origin))
	}

	if c := e.config.Capacity; c > 0 && len(e.particles) > c {
		evict := len(e.particles) - c
		n := copy(e.particles, e.particles[evict:])
		e.particles = e.particles[:n]
	}
}

func (e *Emitter) spawn(origin core.Vec2) Particle {
	angle := e.config.Angle.Random(e.rng)
	speed := e.config.Speed.Random(e.rng)
	offset := e.config.Offset.Random(e.rng)
	dir := core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

	life := e.config.Lifetime.Random(e.rng)
	if life <= 0 {
		life = 1.0
	}

	return Particle{
		Pos:    origin.Add(dir.Scale(offset)),
		Vel:    dir.Scale(speed),
		MaxAge: life,
		start:  e.config.StartColor,
		end:    e.config.EndColor,
	}
}

// Tick ages every particle by dt seconds. Particles reaching their MaxAge are
// dropped without being moved; the rest are integrated, damped and pulled by
// gravity. Survivors keep their relative order.
func (e *Emitter) Tick(dt float64) {
	damping := e.config.Damping
	if damping <= 0 {
		damping = 1
	}
	gx := e.config.Gravity.X * dt
	gy := e.config.Gravity.Y * dt

	alive := e.particles[:0]
	for i := range e.particles {
		p := e.particles[i]
		p.Age += dt
		if p.Age >= p.MaxAge {
			continue
		}

		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt

		p.Vel.X = p.Vel.X*damping + gx
		p.Vel.Y = p.Vel.Y*damping + gy

		alive = append(alive, p)
	}
	e.particles = alive
}
