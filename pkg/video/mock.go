package video

import "sync"

//MockOps is a scripted implementation of the ImageOps interface.
//Tests queue the results DetectCircles and LargestContourCentroid should
//return on each successive call; color conversion, masking and denoising
//pass the input through untouched.
type MockOps struct {
	mu        sync.Mutex
	circles   [][]Circle
	centroids []*Position
	err       error
}

//NewMockOps creates a new MockOps instance
func NewMockOps() *MockOps {
	return &MockOps{}
}

//QueueCircles appends the circle set one DetectCircles call will return.
//Queue an empty set to force the contour fallback for that frame.
func (m *MockOps) QueueCircles(circles ...Circle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.circles = append(m.circles, circles)
}

//QueueCentroid appends the position one LargestContourCentroid call will return (nil for no contour)
func (m *MockOps) QueueCentroid(p *Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.centroids = append(m.centroids, p)
}

//SetError makes every operation fail with err until reset with nil
func (m *MockOps) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

//ToHSV returns the frame unchanged
func (m *MockOps) ToHSV(frame *Frame) (*Frame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return frame, nil
}

//InRange returns an empty mask of the frame's size
func (m *MockOps) InRange(hsv *Frame, lower, upper HSV) (*Mask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &Mask{Pixels: make([]byte, hsv.Width*hsv.Height), Width: hsv.Width, Height: hsv.Height}, nil
}

//Denoise returns the mask unchanged
func (m *MockOps) Denoise(mask *Mask) (*Mask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return mask, nil
}

//DetectCircles pops the next queued circle set, or none when the queue is empty
func (m *MockOps) DetectCircles(mask *Mask, params CircleParams) ([]Circle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if len(m.circles) == 0 {
		return nil, nil
	}
	next := m.circles[0]
	m.circles = m.circles[1:]
	return next, nil
}

//LargestContourCentroid pops the next queued centroid, or nil when the queue is empty
func (m *MockOps) LargestContourCentroid(mask *Mask, minArea float64) (*Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if len(m.centroids) == 0 {
		return nil, nil
	}
	next := m.centroids[0]
	m.centroids = m.centroids[1:]
	return next, nil
}
