package mot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityEstimator(t *testing.T) {
	tracker := NewCentroidTracker(5)
	estimator := NewVelocityEstimator(1.0)

	// Object moving right at 10 px/frame
	for frame := 0; frame < 5; frame++ {
		offset := float64(frame * 10)
		objects := tracker.Update([]Rectangle{NewRect(offset, 0, offset+10, 10)})
		err := estimator.Observe(objects)
		require.NoError(t, err)
	}

	vx, vy, ok := estimator.Velocity(0)
	require.True(t, ok)
	assert.Greater(t, vx, 1.0)
	assert.InDelta(t, 0.0, vy, 1.0)

	smoothed, ok := estimator.Smoothed(0)
	require.True(t, ok)
	assert.Greater(t, smoothed.X, 0)
}

func TestVelocityEstimatorSingleObservation(t *testing.T) {
	estimator := NewVelocityEstimator(1.0)
	err := estimator.Observe(map[int]Rectangle{0: NewRect(0, 0, 10, 10)})
	require.NoError(t, err)

	_, _, ok := estimator.Velocity(0)
	assert.False(t, ok, "velocity needs at least two observations")
}

func TestVelocityEstimatorDropsExpired(t *testing.T) {
	estimator := NewVelocityEstimator(1.0)
	require.NoError(t, estimator.Observe(map[int]Rectangle{0: NewRect(0, 0, 10, 10)}))
	require.NoError(t, estimator.Observe(map[int]Rectangle{1: NewRect(50, 50, 60, 60)}))

	_, ok := estimator.Smoothed(0)
	assert.False(t, ok)
	_, ok = estimator.Smoothed(1)
	assert.True(t, ok)
}
