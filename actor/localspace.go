package actor

import "github.com/go-gl/mathgl/mgl64"

// LocalSpace represents an orthonormal coordinate frame in 3D space.
// Side, Up and Forward are unit basis vectors; in local coordinates
// side is +X, up is +Y and forward is +Z (side cross up = forward).
type LocalSpace struct {
	Side     mgl64.Vec3
	Up       mgl64.Vec3
	Forward  mgl64.Vec3
	Position mgl64.Vec3
}

// IdentityLocalSpace creates a frame aligned with the world axes at the origin
func IdentityLocalSpace() LocalSpace {
	return LocalSpace{
		Side:    mgl64.Vec3{1, 0, 0},
		Up:      mgl64.Vec3{0, 1, 0},
		Forward: mgl64.Vec3{0, 0, 1},
	}
}

// LocalizePosition transforms a world-space point into this frame
func (ls LocalSpace) LocalizePosition(world mgl64.Vec3) mgl64.Vec3 {
	offset := world.Sub(ls.Position)

	return mgl64.Vec3{
		offset.Dot(ls.Side),
		offset.Dot(ls.Up),
		offset.Dot(ls.Forward),
	}
}

// LocalizeDirection transforms a world-space direction into this frame
// (rotation only, no translation)
func (ls LocalSpace) LocalizeDirection(world mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		world.Dot(ls.Side),
		world.Dot(ls.Up),
		world.Dot(ls.Forward),
	}
}

// GlobalizePosition transforms a point in this frame back to world space
func (ls LocalSpace) GlobalizePosition(local mgl64.Vec3) mgl64.Vec3 {
	return ls.Position.
		Add(ls.Side.Mul(local.X())).
		Add(ls.Up.Mul(local.Y())).
		Add(ls.Forward.Mul(local.Z()))
}

// GlobalizeDirection transforms a direction in this frame back to world space
func (ls LocalSpace) GlobalizeDirection(local mgl64.Vec3) mgl64.Vec3 {
	return ls.Side.Mul(local.X()).
		Add(ls.Up.Mul(local.Y())).
		Add(ls.Forward.Mul(local.Z()))
}

// RegenerateOrthonormalBasis rebuilds the frame around a new forward
// direction, keeping up as close as possible to its previous value.
// newForward must be non-zero and not parallel to the current up.
func (ls *LocalSpace) RegenerateOrthonormalBasis(newForward mgl64.Vec3) {
	ls.Forward = newForward.Normalize()
	ls.Side = ls.Up.Cross(ls.Forward).Normalize()
	ls.Up = ls.Forward.Cross(ls.Side)
}
