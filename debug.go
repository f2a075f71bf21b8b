package scrollcam

import "time"

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	collectTime time.Duration
	sortTime    time.Duration
	composeTime time.Duration
	entityCount int
}

// debugLog writes timing stats and camera state at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.collectTime + stats.sortTime + stats.composeTime
	s.logger.Debug("frame",
		"frame", s.frame,
		"collect", stats.collectTime,
		"sort", stats.sortTime,
		"compose", stats.composeTime,
		"total", total,
		"entities", stats.entityCount,
		"mode", s.camera.Mode,
		"offset_x", s.camera.Offset.X,
		"offset_y", s.camera.Offset.Y,
		"zoom", s.camera.Zoom,
	)
}
