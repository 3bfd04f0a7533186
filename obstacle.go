// Package veer computes steering forces that let an autonomous vehicle
// avoid static obstacles: it detects where a vehicle's extrapolated
// straight-line path first intersects an obstacle, and turns that
// intersection into a lateral avoidance force.
package veer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

// SeenFrom indicates which side of an obstacle registers a collision
type SeenFrom int

const (
	// SeenFromOutside obstacles are solid: only approaches from outside hit
	SeenFromOutside SeenFrom = iota
	// SeenFromInside obstacles are hollow: only the inner surface hits
	SeenFromInside
	// SeenFromBoth obstacles register hits from either side
	SeenFromBoth
)

// Obstacle is the interface that all obstacle shapes must implement
type Obstacle interface {
	// FindIntersectionWithVehiclePath tests the vehicle's forward path
	// against this obstacle and returns a fully-populated result.
	// It has no side effects on the vehicle or the obstacle.
	FindIntersectionWithVehiclePath(vehicle actor.Vehicle) PathIntersection
}

// ObstacleGroup is an ordered collection of obstacles. The group holds
// non-owning references: callers are responsible for keeping the
// obstacles alive for the duration of any query.
type ObstacleGroup []Obstacle

// FirstPathIntersection tests every obstacle in the group against the
// vehicle's forward path and returns the intersection nearest along the
// path. Iteration is a plain linear scan in group order with no early
// exit; ties on distance keep the first obstacle found. The zero-value
// result (Intersect false) is returned when nothing intersects.
func (group ObstacleGroup) FirstPathIntersection(vehicle actor.Vehicle) PathIntersection {
	var nearest PathIntersection

	for _, obstacle := range group {
		next := obstacle.FindIntersectionWithVehiclePath(vehicle)
		if !next.Intersect {
			continue
		}

		if !nearest.Intersect || next.Distance < nearest.Distance {
			nearest = next
		}
	}

	return nearest
}

// SteerToAvoid computes the avoidance force for a single obstacle.
// It returns the zero vector when the vehicle's path does not intersect
// the obstacle within minTimeToCollision seconds at the current speed.
func SteerToAvoid(obstacle Obstacle, vehicle actor.Vehicle, minTimeToCollision float64) mgl64.Vec3 {
	pi := obstacle.FindIntersectionWithVehiclePath(vehicle)

	return pi.SteerToAvoidIfNeeded(vehicle, minTimeToCollision)
}

// SteerToAvoidObstacles computes the avoidance force for the nearest
// intersecting obstacle in the group, or the zero vector when no
// obstacle threatens the path within the time horizon
func SteerToAvoidObstacles(vehicle actor.Vehicle, minTimeToCollision float64, obstacles ObstacleGroup) mgl64.Vec3 {
	nearest := obstacles.FirstPathIntersection(vehicle)

	return nearest.SteerToAvoidIfNeeded(vehicle, minTimeToCollision)
}

// normalizeSafe returns the unit vector in the direction of vec, or the
// zero vector when vec has zero length (mgl64's Normalize would yield NaN)
func normalizeSafe(vec mgl64.Vec3) mgl64.Vec3 {
	length := vec.Len()
	if length > 0 {
		return vec.Mul(1.0 / length)
	}

	return vec
}
