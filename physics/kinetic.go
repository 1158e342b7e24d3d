package physics

// Kinetic is a one-axis body driven by forces, in points and seconds
type Kinetic struct {
	Vel     float64
	Mass    float64
	Damping float64 // fraction of velocity lost per second
}

// ApplyForce adds the velocity change of force acting for dt: v += f/m * dt
func (k *Kinetic) ApplyForce(force, dt float64) {
	if k.Mass <= 0 {
		return
	}
	k.Vel += force / k.Mass * dt
}

// ApplyImpulse adds a velocity delta
func (k *Kinetic) ApplyImpulse(dv float64) {
	k.Vel += dv
}

// Integrate applies damping and returns the displacement over dt
func (k *Kinetic) Integrate(dt float64) float64 {
	k.Vel *= 1 - k.Damping*dt
	return k.Vel * dt
}

// Stop zeroes velocity (edge contact)
func (k *Kinetic) Stop() {
	k.Vel = 0
}
