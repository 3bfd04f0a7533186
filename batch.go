package veer

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/veer/actor"
)

const DEFAULT_WORKERS = 1

// SteerToAvoidObstaclesMany computes the group-avoidance force for each
// vehicle, fanning the queries out over workersCount goroutines.
// Obstacles are only read, so the queries are independent; the result
// slice is indexed like vehicles.
func SteerToAvoidObstaclesMany(vehicles []actor.Vehicle, minTimeToCollision float64, obstacles ObstacleGroup, workersCount int) []mgl64.Vec3 {
	forces := make([]mgl64.Vec3, len(vehicles))

	task(workersCount, vehicles, func(i int, vehicle actor.Vehicle) {
		forces[i] = SteerToAvoidObstacles(vehicle, minTimeToCollision, obstacles)
	})

	return forces
}

func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	workersCount = max(DEFAULT_WORKERS, workersCount)
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
