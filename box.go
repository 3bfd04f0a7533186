package veer

import "github.com/akmonengine/veer/actor"

// BoxObstacle is an oriented box obstacle, defined by its full
// dimensions along the side (Width), up (Height) and forward (Depth)
// axes of its frame. It has no intersection math of its own: each query
// decomposes the box into its six rectangular faces and scans them.
type BoxObstacle struct {
	Width  float64
	Height float64
	Depth  float64
	actor.LocalSpace
	Seen SeenFrom
}

// Faces builds the box's six rectangular faces, each centered at a
// half-extent along one local axis with its plane normal pointing
// outward. The faces are constructed fresh on every call and inherit
// the box's SeenFrom tag.
func (b *BoxObstacle) Faces() ObstacleGroup {
	s := b.LocalSpace.Side
	u := b.LocalSpace.Up
	f := b.LocalSpace.Forward
	p := b.LocalSpace.Position

	// offsets from the box center to each face center
	hw := s.Mul(b.Width / 2)
	hh := u.Mul(b.Height / 2)
	hd := f.Mul(b.Depth / 2)

	face := func(width, height float64, ls actor.LocalSpace) *RectangleObstacle {
		return &RectangleObstacle{Width: width, Height: height, LocalSpace: ls, Seen: b.Seen}
	}

	return ObstacleGroup{
		// front
		face(b.Width, b.Height, actor.LocalSpace{Side: s, Up: u, Forward: f, Position: p.Add(hd)}),
		// back
		face(b.Width, b.Height, actor.LocalSpace{Side: s.Mul(-1), Up: u, Forward: f.Mul(-1), Position: p.Sub(hd)}),
		// side
		face(b.Depth, b.Height, actor.LocalSpace{Side: f.Mul(-1), Up: u, Forward: s, Position: p.Add(hw)}),
		// other side
		face(b.Depth, b.Height, actor.LocalSpace{Side: f, Up: u, Forward: s.Mul(-1), Position: p.Sub(hw)}),
		// top
		face(b.Width, b.Depth, actor.LocalSpace{Side: s, Up: f.Mul(-1), Forward: u, Position: p.Add(hh)}),
		// bottom
		face(b.Width, b.Depth, actor.LocalSpace{Side: s.Mul(-1), Up: f.Mul(-1), Forward: u.Mul(-1), Position: p.Sub(hh)}),
	}
}

// FindIntersectionWithVehiclePath returns the nearest intersection of
// the vehicle's path with any of the box's six faces
func (b *BoxObstacle) FindIntersectionWithVehiclePath(vehicle actor.Vehicle) PathIntersection {
	pi := b.Faces().FirstPathIntersection(vehicle)
	if pi.Intersect {
		pi.Obstacle = b
	}

	return pi
}
