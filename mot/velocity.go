package mot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// VelocityEstimator smooths per-object centroids with a 2D Kalman filter and
// derives velocities from consecutive smoothed states. It consumes the
// id -> box mapping produced by CentroidTracker.Update and keeps one filter
// per live id, so the association behavior of the tracker is untouched.
type VelocityEstimator struct {
	dt     float64
	tracks map[int]*velocityTrack
}

type velocityTrack struct {
	filter *kalman_filter.Kalman2D
	// Last smoothed state
	x, y float64
	// Velocity estimate, valid after the second observation
	vx, vy   float64
	observed int
}

// NewVelocityEstimator creates an estimator with the given time step between
// frames (e.g. 1.0/25.0 for a 25 fps stream).
func NewVelocityEstimator(dt float64) *VelocityEstimator {
	return &VelocityEstimator{
		dt:     dt,
		tracks: make(map[int]*velocityTrack),
	}
}

// Observe feeds one frame's tracker output. Filters are created for new ids
// and dropped for ids no longer present in the mapping.
func (estimator *VelocityEstimator) Observe(objects map[int]Rectangle) error {
	for objectID := range estimator.tracks {
		if _, ok := objects[objectID]; !ok {
			delete(estimator.tracks, objectID)
		}
	}

	for objectID, bbox := range objects {
		center := bbox.Center()
		cx := float64(center.X)
		cy := float64(center.Y)

		track, ok := estimator.tracks[objectID]
		if !ok {
			/* Kalman filter props */
			ux := 1.0
			uy := 1.0
			stdDevA := 2.0
			stdDevMx := 0.1
			stdDevMy := 0.1
			kf := kalman_filter.NewKalman2D(estimator.dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(cx, cy))
			estimator.tracks[objectID] = &velocityTrack{
				filter:   kf,
				x:        cx,
				y:        cy,
				observed: 1,
			}
			continue
		}

		track.filter.Predict()
		err := track.filter.Update(cx, cy)
		if err != nil {
			return errors.Wrapf(err, "Can't update velocity filter for object %d", objectID)
		}
		stateX, stateY := track.filter.GetState()
		track.vx = (stateX - track.x) / estimator.dt
		track.vy = (stateY - track.y) / estimator.dt
		track.x = stateX
		track.y = stateY
		track.observed++
	}
	return nil
}

// Velocity returns the object's velocity estimate in pixels per second.
// ok is false until the object has been observed at least twice.
func (estimator *VelocityEstimator) Velocity(objectID int) (vx, vy float64, ok bool) {
	track, found := estimator.tracks[objectID]
	if !found || track.observed < 2 {
		return 0, 0, false
	}
	return track.vx, track.vy, true
}

// Smoothed returns the object's Kalman-smoothed centroid
func (estimator *VelocityEstimator) Smoothed(objectID int) (Point, bool) {
	track, found := estimator.tracks[objectID]
	if !found {
		return Point{}, false
	}
	return Point{X: int(track.x), Y: int(track.y)}, true
}
