package video

import "github.com/chenBenjamin97/shot-analyzer/pkg/utils"

//TrajectoryTracker follows the ball across the frames of one analysis session.
//It keeps a bounded sliding window of accepted positions and flags a shot when
//the vertical motion inside the window flips from a strong ascent to a strong
//descent (the arc's apex). It is scoped to exactly one session and is not safe
//for concurrent use.
//
//Overlapping windows can flag the same apex more than once, the tracker does
//not deduplicate.
type TrajectoryTracker struct {
	window       []trajectorySample
	capacity     int
	threshold    int
	lastPosition *Position
}

//NewTrajectoryTracker creates a tracker with the given window capacity and
//vertical motion threshold (pixels between consecutive samples)
func NewTrajectoryTracker(capacity, threshold int) *TrajectoryTracker {
	if capacity <= 0 {
		capacity = utils.DefaultTrajectoryCapacity
	}
	if threshold <= 0 {
		threshold = utils.DefaultShotThreshold
	}

	return &TrajectoryTracker{
		window:    make([]trajectorySample, 0, capacity),
		capacity:  capacity,
		threshold: threshold,
	}
}

//Update appends a (position, timestamp) sample to the window, evicting the
//oldest sample when the window is full. A nil position is a no-op.
func (t *TrajectoryTracker) Update(position *Position, timestamp float64) {
	if position == nil {
		return
	}

	t.window = append(t.window, trajectorySample{
		Position:  *position,
		Timestamp: timestamp,
		X:         position.X,
		Y:         position.Y,
	})

	if len(t.window) > t.capacity {
		t.window = t.window[1:]
	}

	p := *position
	t.lastPosition = &p
}

//DetectShot reports whether the most recent samples contain a shot apex:
//a vertical delta below -threshold immediately followed by one above +threshold
//(y grows downward in image coordinates). Requires at least 5 samples.
func (t *TrajectoryTracker) DetectShot() bool {
	if len(t.window) < utils.MinShotSamples {
		return false
	}

	recent := t.window[len(t.window)-utils.MinShotSamples:]

	changes := make([]int, 0, len(recent)-1)
	for i := 1; i < len(recent); i++ {
		changes = append(changes, recent[i].Y-recent[i-1].Y)
	}

	for i := 1; i < len(changes); i++ {
		if changes[i-1] < -t.threshold && changes[i] > t.threshold {
			return true
		}
	}

	return false
}

//LastPosition returns the most recently accepted position, nil before the first accepted sample
func (t *TrajectoryTracker) LastPosition() *Position {
	return t.lastPosition
}

//Len returns the number of samples currently held in the window
func (t *TrajectoryTracker) Len() int {
	return len(t.window)
}
