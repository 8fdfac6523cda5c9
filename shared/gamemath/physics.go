package gamemath

// Physic is the per-entity velocity/acceleration state. Velocities are pixels
// per nominal frame and dt is a frame ratio, so Apply(1, ...) advances exactly
// one nominal frame.
type Physic struct {
	VX, VY float64
	AX, AY float64

	GravityEnabled bool
	Gravity        float64 // added to AY while enabled
}

// Apply advances the position with semi-implicit Euler: v += a*dt, then
// pos += v*dt. It never looks at the tile grid.
func (p *Physic) Apply(dt float64, x, y *float64) {
	ay := p.AY
	if p.GravityEnabled {
		ay += p.Gravity
	}
	p.VX += p.AX * dt
	p.VY += ay * dt
	*x += p.VX * dt
	*y += p.VY * dt
}

// Reset zeroes velocity and acceleration.
func (p *Physic) Reset() {
	p.VX, p.VY = 0, 0
	p.AX, p.AY = 0, 0
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
