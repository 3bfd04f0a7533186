package veer

import "github.com/akmonengine/veer/actor"

// RectangleObstacle is a bounded flat obstacle: a Width x Height patch
// of the local XY plane of its frame, centered on the frame's position.
// Its normal is the frame's forward axis.
type RectangleObstacle struct {
	Width  float64
	Height float64
	actor.LocalSpace
	Seen SeenFrom
}

func (r *RectangleObstacle) FindIntersectionWithVehiclePath(vehicle actor.Vehicle) PathIntersection {
	// the crossing point must fall within the rectangle's half-extents,
	// bloated by the vehicle's bounding radius
	return planePathIntersection(r, r.LocalSpace, r.Seen, vehicle, func(x, y, radius float64) bool {
		w := radius + r.Width/2
		h := radius + r.Height/2

		return x <= w && x >= -w && y <= h && y >= -h
	})
}
