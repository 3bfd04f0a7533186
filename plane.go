package veer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

// PlaneObstacle is an unbounded flat obstacle. Its surface is the local
// XY plane of its frame and its normal is the frame's forward axis.
type PlaneObstacle struct {
	actor.LocalSpace
	Seen SeenFrom
}

func (p *PlaneObstacle) FindIntersectionWithVehiclePath(vehicle actor.Vehicle) PathIntersection {
	// an infinite plane has no in-plane extent to reject against
	return planePathIntersection(p, p.LocalSpace, p.Seen, vehicle, func(x, y, radius float64) bool {
		return true
	})
}

// planePathIntersection tests the vehicle's path against the local XY
// plane of a frame, shared by the plane family of obstacles. The inside
// predicate decides whether the plane-crossing point (in the frame's
// local XY, given the vehicle's bounding radius) lies on the obstacle.
func planePathIntersection(obstacle Obstacle, ls actor.LocalSpace, seen SeenFrom, vehicle actor.Vehicle, inside func(x, y, radius float64) bool) PathIntersection {
	var pi PathIntersection

	lp := ls.LocalizePosition(vehicle.Position())
	ld := ls.LocalizeDirection(vehicle.Forward())

	// no intersection if the path is parallel to the plane
	if ld.Z() == 0 {
		return pi
	}

	// no intersection if the vehicle is heading away from the plane
	if lp.Z() > 0 && ld.Z() > 0 {
		return pi
	}
	if lp.Z() < 0 && ld.Z() < 0 {
		return pi
	}

	// no intersection if the obstacle is not seen from the vehicle's side
	if seen == SeenFromOutside && lp.Z() < 0 {
		return pi
	}
	if seen == SeenFromInside && lp.Z() > 0 {
		return pi
	}

	// crossing point of the path with the plane, in local XY
	ix := lp.X() - ld.X()*lp.Z()/ld.Z()
	iy := lp.Y() - ld.Y()*lp.Z()/ld.Z()

	if !inside(ix, iy, vehicle.Radius()) {
		return pi
	}

	crossing := mgl64.Vec3{ix, iy, 0}

	// push away from the plane on the approach side, and away from the
	// frame's center within the plane
	sideSign := 1.0
	if lp.Z() < 0 {
		sideSign = -1.0
	}
	opposingNormal := ls.Forward.Mul(sideSign)
	inPlaneOffset := ls.GlobalizeDirection(normalizeSafe(crossing))

	pi.Intersect = true
	pi.Obstacle = obstacle
	pi.Distance = lp.Sub(crossing).Len()
	pi.SurfacePoint = ls.GlobalizePosition(crossing)
	pi.SurfaceNormal = opposingNormal
	pi.SteerHint = opposingNormal.Add(inPlaneOffset)

	return pi
}
