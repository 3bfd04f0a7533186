package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer"
	"github.com/akmonengine/veer/actor"
)

// SetupScene builds a corridor of mixed obstacles along the +Z axis
// and a vehicle about to fly through it
func SetupScene() (*actor.SimpleVehicle, veer.ObstacleGroup) {
	vehicle := actor.NewSimpleVehicle()
	vehicle.SetRadius(0.5)
	vehicle.SetSpeed(4)
	vehicle.SetMaxSpeed(4)
	vehicle.SetMaxForce(3)

	sphere := &veer.SphereObstacle{
		Center: mgl64.Vec3{0.3, 0, 12},
		Radius: 2,
	}

	boxSpace := actor.IdentityLocalSpace()
	boxSpace.Position = mgl64.Vec3{-1.5, 0, 25}
	box := &veer.BoxObstacle{
		Width:      4,
		Height:     4,
		Depth:      4,
		LocalSpace: boxSpace,
	}

	// a wall segment with a normal facing back down the corridor
	wall := &veer.RectangleObstacle{
		Width:  5,
		Height: 8,
		LocalSpace: actor.LocalSpace{
			Side:     mgl64.Vec3{-1, 0, 0},
			Up:       mgl64.Vec3{0, 1, 0},
			Forward:  mgl64.Vec3{0, 0, -1},
			Position: mgl64.Vec3{2, 0, 40},
		},
	}

	return vehicle, veer.ObstacleGroup{sphere, box, wall}
}

func main() {
	vehicle, obstacles := SetupScene()

	const dt = 1.0 / 60.0
	const minTimeToCollision = 3.0
	const maxSteps = 900

	fmt.Println("Corridor run: sphere at z=12, box at z=25, wall at z=40")
	fmt.Println("========================================================")

	for step := 0; step < maxSteps; step++ {
		force := veer.SteerToAvoidObstacles(vehicle, minTimeToCollision, obstacles)

		// keep a little forward thrust so avoidance cannot stall the run
		force = force.Add(vehicle.Forward().Mul(0.5))
		vehicle.ApplySteeringForce(force, dt)

		if step%30 == 0 {
			nearest := obstacles.FirstPathIntersection(vehicle)
			status := "clear"
			if nearest.Intersect {
				status = fmt.Sprintf("threat at %.2f", nearest.Distance)
			}
			fmt.Printf("t=%5.2fs position=(%6.2f, %5.2f, %6.2f) speed=%.2f %s\n",
				float64(step)*dt,
				vehicle.Position().X(), vehicle.Position().Y(), vehicle.Position().Z(),
				vehicle.Speed(), status)
		}

		if vehicle.Position().Z() > 50 {
			fmt.Printf("\nreached the end of the corridor at t=%.2fs\n", float64(step)*dt)
			return
		}
	}

	fmt.Println("\nran out of steps before clearing the corridor")
}
