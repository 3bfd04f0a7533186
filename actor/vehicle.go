package actor

import "github.com/go-gl/mathgl/mgl64"

// Vehicle is the interface that obstacle queries consume. It exposes the
// pose and motion state of an agent, plus transforms into the agent's
// local frame (forward = local +Z).
type Vehicle interface {
	Position() mgl64.Vec3
	// Forward returns the heading as a unit vector
	Forward() mgl64.Vec3
	Side() mgl64.Vec3
	Up() mgl64.Vec3
	// Speed returns the current speed along Forward (m/s)
	Speed() float64
	// Radius returns the bounding radius used to bloat obstacle extents
	Radius() float64
	// MaxForce returns the magnitude of the strongest steering correction
	// the vehicle can apply
	MaxForce() float64
	LocalizePosition(world mgl64.Vec3) mgl64.Vec3
	LocalizeDirection(world mgl64.Vec3) mgl64.Vec3
}

// SimpleVehicle is a minimal point-mass implementation of Vehicle,
// usable directly or as a template for richer agent types
type SimpleVehicle struct {
	LocalSpace

	mass     float64
	radius   float64
	speed    float64
	maxForce float64
	maxSpeed float64
}

// NewSimpleVehicle creates a stationary unit-mass vehicle at the origin,
// facing +Z
func NewSimpleVehicle() *SimpleVehicle {
	return &SimpleVehicle{
		LocalSpace: IdentityLocalSpace(),
		mass:       1,
		radius:     0.5,
		maxForce:   0.1,
		maxSpeed:   1,
	}
}

func (v *SimpleVehicle) Position() mgl64.Vec3 { return v.LocalSpace.Position }
func (v *SimpleVehicle) Forward() mgl64.Vec3  { return v.LocalSpace.Forward }
func (v *SimpleVehicle) Side() mgl64.Vec3     { return v.LocalSpace.Side }
func (v *SimpleVehicle) Up() mgl64.Vec3       { return v.LocalSpace.Up }
func (v *SimpleVehicle) Speed() float64       { return v.speed }
func (v *SimpleVehicle) Radius() float64      { return v.radius }
func (v *SimpleVehicle) MaxForce() float64    { return v.maxForce }
func (v *SimpleVehicle) Mass() float64        { return v.mass }
func (v *SimpleVehicle) MaxSpeed() float64    { return v.maxSpeed }

func (v *SimpleVehicle) SetPosition(p mgl64.Vec3) { v.LocalSpace.Position = p }
func (v *SimpleVehicle) SetSpeed(s float64)       { v.speed = s }
func (v *SimpleVehicle) SetRadius(r float64)      { v.radius = r }
func (v *SimpleVehicle) SetMass(m float64)        { v.mass = m }
func (v *SimpleVehicle) SetMaxForce(f float64)    { v.maxForce = f }
func (v *SimpleVehicle) SetMaxSpeed(s float64)    { v.maxSpeed = s }

// Velocity returns the velocity vector (Forward scaled by Speed)
func (v *SimpleVehicle) Velocity() mgl64.Vec3 {
	return v.LocalSpace.Forward.Mul(v.speed)
}

// ApplySteeringForce integrates a steering force over dt using simple
// Euler integration: the force is truncated to maxForce, converted to an
// acceleration through the mass, and the resulting velocity is truncated
// to maxSpeed. The frame is regenerated to track the new heading.
func (v *SimpleVehicle) ApplySteeringForce(force mgl64.Vec3, dt float64) {
	clipped := truncateLength(force, v.maxForce)
	acceleration := clipped.Mul(1.0 / v.mass)

	velocity := v.Velocity().Add(acceleration.Mul(dt))
	velocity = truncateLength(velocity, v.maxSpeed)

	v.speed = velocity.Len()
	if v.speed > 0 {
		v.RegenerateOrthonormalBasis(velocity.Mul(1.0 / v.speed))
	}

	v.LocalSpace.Position = v.LocalSpace.Position.Add(velocity.Mul(dt))
}

// truncateLength clamps the magnitude of a vector to maxLength
func truncateLength(vec mgl64.Vec3, maxLength float64) mgl64.Vec3 {
	length := vec.Len()
	if length <= maxLength {
		return vec
	}

	return vec.Mul(maxLength / length)
}
