package config

import "sync"

// BuildSettings holds collider build configuration.
type BuildSettings struct {
	mu          sync.RWMutex
	bakeWorkers int
	cellSize    float32
}

var globalBuildSettings = &BuildSettings{
	bakeWorkers: 2,
	cellSize:    1.0,
}

// GetBakeWorkers returns the number of background mesh-cooking workers.
func GetBakeWorkers() int {
	globalBuildSettings.mu.RLock()
	defer globalBuildSettings.mu.RUnlock()
	return globalBuildSettings.bakeWorkers
}

// SetBakeWorkers sets the number of background mesh-cooking workers.
func SetBakeWorkers(n int) {
	globalBuildSettings.mu.Lock()
	defer globalBuildSettings.mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}

	globalBuildSettings.bakeWorkers = n
}

// GetCellSize returns the uniform per-cell collider size.
func GetCellSize() float32 {
	globalBuildSettings.mu.RLock()
	defer globalBuildSettings.mu.RUnlock()
	return globalBuildSettings.cellSize
}

// SetCellSize sets the uniform per-cell collider size.
func SetCellSize(size float32) {
	globalBuildSettings.mu.Lock()
	defer globalBuildSettings.mu.Unlock()

	if size <= 0 {
		size = 1.0
	}

	globalBuildSettings.cellSize = size
}
