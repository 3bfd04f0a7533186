package veer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

// SphereObstacle is a spherical obstacle defined by its center and radius
type SphereObstacle struct {
	Center mgl64.Vec3
	Radius float64
	Seen   SeenFrom
}

// FindIntersectionWithVehiclePath solves the line/sphere quadratic in
// the vehicle's local space, where the path is the +Z (forward) axis.
// The sphere is bloated by the vehicle's own radius, so a hit means the
// vehicle's bounding sphere would touch the obstacle.
func (s *SphereObstacle) FindIntersectionWithVehiclePath(vehicle actor.Vehicle) PathIntersection {
	var pi PathIntersection

	// sphere center in the vehicle's coordinate space
	lc := vehicle.LocalizePosition(s.Center)

	r := s.Radius + vehicle.Radius()
	b := -2 * lc.Z()
	c := lc.X()*lc.X() + lc.Y()*lc.Y() + lc.Z()*lc.Z() - r*r
	d := b*b - 4*c

	// the path misses the sphere entirely
	if d < 0 {
		return pi
	}

	// the path crosses the sphere at parametric distances p and q
	// (coincident when d is zero: the path is tangent)
	sq := math.Sqrt(d)
	p := (-b + sq) / 2
	q := (-b - sq) / 2

	// both crossings behind the vehicle
	if p < 0 && q < 0 {
		return pi
	}

	pi.Intersect = true
	pi.Obstacle = s

	switch {
	case p > 0 && q > 0:
		// both crossings ahead, take the nearer one
		pi.Distance = math.Min(p, q)
	case s.Seen == SeenFromOutside:
		// one crossing ahead and one behind: the vehicle is inside a
		// solid obstacle, so it is already colliding
		pi.Distance = 0
	case p > 0:
		// hollow (or both-sides) obstacle, take the crossing ahead
		pi.Distance = p
	default:
		pi.Distance = q
	}

	pi.SurfacePoint = vehicle.Position().Add(vehicle.Forward().Mul(pi.Distance))
	pi.SurfaceNormal = normalizeSafe(pi.SurfacePoint.Sub(s.Center))
	pi.SteerHint = pi.SurfaceNormal

	return pi
}
