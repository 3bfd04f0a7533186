package veer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

func TestBoxFaces(t *testing.T) {
	box := &BoxObstacle{
		Width:      2,
		Height:     4,
		Depth:      6,
		LocalSpace: boxSpaceAt(mgl64.Vec3{1, 2, 3}),
		Seen:       SeenFromBoth,
	}

	faces := box.Faces()
	if len(faces) != 6 {
		t.Fatalf("got %d faces, want 6", len(faces))
	}

	for i, face := range faces {
		rect, ok := face.(*RectangleObstacle)
		if !ok {
			t.Fatalf("face %d is %T, want *RectangleObstacle", i, face)
		}

		// every face frame must be orthonormal
		if !floatEqual(rect.LocalSpace.Side.Len(), 1, 1e-9) ||
			!floatEqual(rect.LocalSpace.Up.Len(), 1, 1e-9) ||
			!floatEqual(rect.LocalSpace.Forward.Len(), 1, 1e-9) {
			t.Errorf("face %d has non-unit axes", i)
		}
		if math.Abs(rect.LocalSpace.Side.Dot(rect.LocalSpace.Up)) > 1e-9 ||
			math.Abs(rect.LocalSpace.Side.Dot(rect.LocalSpace.Forward)) > 1e-9 ||
			math.Abs(rect.LocalSpace.Up.Dot(rect.LocalSpace.Forward)) > 1e-9 {
			t.Errorf("face %d axes not mutually perpendicular", i)
		}

		// every face normal points away from the box center
		toFace := rect.LocalSpace.Position.Sub(box.LocalSpace.Position)
		if rect.LocalSpace.Forward.Dot(toFace) <= 0 {
			t.Errorf("face %d normal %v does not point outward (offset %v)", i, rect.LocalSpace.Forward, toFace)
		}

		// faces inherit the box's visibility tag
		if rect.Seen != SeenFromBoth {
			t.Errorf("face %d Seen = %v, want SeenFromBoth", i, rect.Seen)
		}
	}

	// face centers sit at half-extent offsets: 2 per axis
	expectedOffsets := []mgl64.Vec3{
		{0, 0, 3}, {0, 0, -3}, // front, back (depth 6)
		{1, 0, 0}, {-1, 0, 0}, // sides (width 2)
		{0, 2, 0}, {0, -2, 0}, // top, bottom (height 4)
	}
	for _, offset := range expectedOffsets {
		found := false
		for _, face := range faces {
			rect := face.(*RectangleObstacle)
			if vec3Equal(rect.LocalSpace.Position, box.LocalSpace.Position.Add(offset), 1e-9) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no face centered at offset %v", offset)
		}
	}
}

func TestBoxMatchesRectangleFace(t *testing.T) {
	// a vehicle aimed squarely at one face must get the same
	// intersection a standalone rectangle of that face would report
	box := &BoxObstacle{
		Width:      10,
		Height:     10,
		Depth:      10,
		LocalSpace: boxSpaceAt(mgl64.Vec3{0, 0, 10}),
	}
	rect := facingRectangle(10, 10, mgl64.Vec3{0, 0, 5}, SeenFromOutside)

	vehicles := []*actor.SimpleVehicle{
		testVehicle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 1, 0, 1),
		testVehicle(mgl64.Vec3{2, -3, 0}, mgl64.Vec3{0, 0, 1}, 1, 0, 1),
		testVehicle(mgl64.Vec3{4.8, 0, 0}, mgl64.Vec3{0, 0, 1}, 1, 0.5, 1),
	}

	for _, vehicle := range vehicles {
		fromBox := box.FindIntersectionWithVehiclePath(vehicle)
		fromRect := rect.FindIntersectionWithVehiclePath(vehicle)

		if fromBox.Intersect != fromRect.Intersect {
			t.Fatalf("Intersect: box %v, rectangle %v", fromBox.Intersect, fromRect.Intersect)
		}
		if !floatEqual(fromBox.Distance, fromRect.Distance, 1e-9) {
			t.Errorf("Distance: box %v, rectangle %v", fromBox.Distance, fromRect.Distance)
		}
		if !vec3Equal(fromBox.SurfacePoint, fromRect.SurfacePoint, 1e-9) {
			t.Errorf("SurfacePoint: box %v, rectangle %v", fromBox.SurfacePoint, fromRect.SurfacePoint)
		}
		if !vec3Equal(fromBox.SurfaceNormal, fromRect.SurfaceNormal, 1e-9) {
			t.Errorf("SurfaceNormal: box %v, rectangle %v", fromBox.SurfaceNormal, fromRect.SurfaceNormal)
		}
		if !vec3Equal(fromBox.SteerHint, fromRect.SteerHint, 1e-9) {
			t.Errorf("SteerHint: box %v, rectangle %v", fromBox.SteerHint, fromRect.SteerHint)
		}
	}
}

func TestBoxBackReferencesTheBox(t *testing.T) {
	box := &BoxObstacle{
		Width:      4,
		Height:     4,
		Depth:      4,
		LocalSpace: boxSpaceAt(mgl64.Vec3{0, 0, 10}),
	}
	vehicle := testVehicle(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 1, 0, 1)

	pi := box.FindIntersectionWithVehiclePath(vehicle)
	if !pi.Intersect {
		t.Fatalf("Intersect = false, want true")
	}
	if !floatEqual(pi.Distance, 8, 1e-9) {
		t.Errorf("Distance = %v, want 8", pi.Distance)
	}
	if pi.Obstacle != Obstacle(box) {
		t.Errorf("Obstacle back-reference = %v, want the box itself", pi.Obstacle)
	}
}

func TestBoxMiss(t *testing.T) {
	box := &BoxObstacle{
		Width:      4,
		Height:     4,
		Depth:      4,
		LocalSpace: boxSpaceAt(mgl64.Vec3{0, 0, 10}),
	}

	tests := []struct {
		name            string
		vehiclePosition mgl64.Vec3
		vehicleForward  mgl64.Vec3
	}{
		{name: "beside the box", vehiclePosition: mgl64.Vec3{10, 0, 0}, vehicleForward: mgl64.Vec3{0, 0, 1}},
		{name: "behind and heading away", vehiclePosition: mgl64.Vec3{0, 0, 20}, vehicleForward: mgl64.Vec3{0, 0, 1}},
		{name: "above, parallel to the top", vehiclePosition: mgl64.Vec3{0, 10, 10}, vehicleForward: mgl64.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := testVehicle(tt.vehiclePosition, tt.vehicleForward, 1, 0, 1)
			if pi := box.FindIntersectionWithVehiclePath(vehicle); pi.Intersect {
				t.Errorf("Intersect = true (distance %v), want miss", pi.Distance)
			}
			if force := SteerToAvoid(box, vehicle, 1000); !vec3Equal(force, mgl64.Vec3{}, 1e-9) {
				t.Errorf("force = %v, want zero", force)
			}
		})
	}
}

func TestBoxRotatedFrame(t *testing.T) {
	// box rotated 90° around Y: its depth axis now runs along world X,
	// so a vehicle flying down +X toward it hits the face at x = 7
	ls := actor.IdentityLocalSpace()
	ls.Position = mgl64.Vec3{10, 0, 0}
	ls.RegenerateOrthonormalBasis(mgl64.Vec3{1, 0, 0})

	box := &BoxObstacle{Width: 4, Height: 4, Depth: 6, LocalSpace: ls}
	vehicle := testVehicle(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 1, 0, 1)

	pi := box.FindIntersectionWithVehiclePath(vehicle)
	if !pi.Intersect {
		t.Fatalf("Intersect = false, want true")
	}
	if !floatEqual(pi.Distance, 7, 1e-9) {
		t.Errorf("Distance = %v, want 7", pi.Distance)
	}
	if !vec3Equal(pi.SurfacePoint, mgl64.Vec3{7, 0, 0}, 1e-9) {
		t.Errorf("SurfacePoint = %v, want (7,0,0)", pi.SurfacePoint)
	}
	if !vec3Equal(pi.SurfaceNormal, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("SurfaceNormal = %v, want (-1,0,0)", pi.SurfaceNormal)
	}
}
