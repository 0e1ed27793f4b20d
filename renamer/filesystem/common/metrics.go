package common

import (
	"time"
)

// RunMetrics counts what a single invocation did to the tree
type RunMetrics struct {
	Renamed       int64
	SkippedHidden int64
	Excluded      int64
	Ignored       int64
	Directories   int64
	StartedAt     time.Time
}

// NewRunMetrics creates metrics stamped with the current time
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{StartedAt: time.Now()}
}

// GetMetrics returns the counters as a map, suitable for log fields
func (rm *RunMetrics) GetMetrics() map[string]interface{} {
	return map[string]interface{}{
		"renamed":        rm.Renamed,
		"skipped_hidden": rm.SkippedHidden,
		"excluded":       rm.Excluded,
		"ignored":        rm.Ignored,
		"directories":    rm.Directories,
		"duration":       time.Since(rm.StartedAt).String(),
	}
}
