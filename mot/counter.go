package mot

import (
	"github.com/google/uuid"
)

// SceneCounter aggregates per-frame tracker output into stream-level counts
// for downstream reporting: how many objects are on screen right now and how
// many distinct objects have ever been seen.
type SceneCounter struct {
	streamID  uuid.UUID
	frames    int
	active    int
	totalSeen int
}

// SceneSnapshot is a point-in-time view of the counter
type SceneSnapshot struct {
	StreamID  uuid.UUID
	Frames    int
	Active    int
	TotalSeen int
}

// NewSceneCounter creates a counter with a fresh stream identifier
func NewSceneCounter() *SceneCounter {
	return &SceneCounter{
		streamID: uuid.New(),
	}
}

// Observe records one frame's tracker output. The objects mapping is the
// value returned by CentroidTracker.Update and totalSeen is
// CentroidTracker.TotalSeen after that call.
func (counter *SceneCounter) Observe(objects map[int]Rectangle, totalSeen int) {
	counter.frames++
	counter.active = len(objects)
	if totalSeen > counter.totalSeen {
		counter.totalSeen = totalSeen
	}
}

// Snapshot returns the current counts
func (counter *SceneCounter) Snapshot() SceneSnapshot {
	return SceneSnapshot{
		StreamID:  counter.streamID,
		Frames:    counter.frames,
		Active:    counter.active,
		TotalSeen: counter.totalSeen,
	}
}
