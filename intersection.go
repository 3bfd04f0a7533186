package veer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

// PathIntersection is the transient result of testing one obstacle
// against one vehicle's projected path. Distance, SurfacePoint,
// SurfaceNormal and SteerHint are meaningful only when Intersect is
// true; SurfaceNormal is unit length when set.
type PathIntersection struct {
	Intersect bool
	// Obstacle is a non-owning reference to the obstacle that was hit
	Obstacle Obstacle
	// Distance along the vehicle's path to the intersection
	Distance     float64
	SurfacePoint mgl64.Vec3
	// SurfaceNormal is the outward surface normal at SurfacePoint
	SurfaceNormal mgl64.Vec3
	// SteerHint is the raw direction to push the vehicle, before lateral
	// projection and force scaling
	SteerHint mgl64.Vec3
}

// SteerToAvoidIfNeeded turns an intersection into an avoidance force.
// The intersection is a threat only when it lies closer than the
// distance the vehicle covers in minTimeToCollision seconds; in that
// case the steer hint is projected onto the plane perpendicular to the
// vehicle's forward direction and scaled to MaxForce, producing a pure
// lateral correction. Otherwise the zero vector is returned.
func (pi PathIntersection) SteerToAvoidIfNeeded(vehicle actor.Vehicle, minTimeToCollision float64) mgl64.Vec3 {
	minDistanceToCollision := minTimeToCollision * vehicle.Speed()
	if !pi.Intersect || pi.Distance >= minDistanceToCollision {
		return mgl64.Vec3{}
	}

	forward := vehicle.Forward()
	lateral := pi.SteerHint.Sub(forward.Mul(pi.SteerHint.Dot(forward)))

	return normalizeSafe(lateral).Mul(vehicle.MaxForce())
}
