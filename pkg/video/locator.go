package video

import (
	"log"

	"github.com/chenBenjamin97/shot-analyzer/pkg/utils"
)

//BallLocator finds the most likely ball position in a single frame.
//It is stateless and safe for concurrent use as long as its ImageOps is.
type BallLocator struct {
	ops     ImageOps
	lower   HSV
	upper   HSV
	circles CircleParams
	minArea float64
}

//NewBallLocator creates a locator segmenting the given HSV band
func NewBallLocator(ops ImageOps, cfg Config) *BallLocator {
	return &BallLocator{
		ops:     ops,
		lower:   cfg.LowerBand,
		upper:   cfg.UpperBand,
		circles: DefaultCircleParams(),
		minArea: utils.MinContourArea,
	}
}

//Locate returns the pixel position of the most likely ball in the frame, or nil when none is found.
//Every internal fault is contained here and reported as "no detection" - a single
//noisy frame must never abort the analysis of a batch.
func (l *BallLocator) Locate(frame *Frame) (pos *Position) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Locate: Recovered ball detection fault, got '%v'", r)
			pos = nil
		}
	}()

	if frame == nil {
		return nil
	}

	hsv, err := l.ops.ToHSV(frame)
	if err != nil {
		log.Printf("Locate: Color conversion error, got '%v'", err)
		return nil
	}

	mask, err := l.ops.InRange(hsv, l.lower, l.upper)
	if err != nil {
		log.Printf("Locate: Mask error, got '%v'", err)
		return nil
	}

	mask, err = l.ops.Denoise(mask)
	if err != nil {
		log.Printf("Locate: Denoise error, got '%v'", err)
		return nil
	}

	if circles, err := l.ops.DetectCircles(mask, l.circles); err != nil {
		log.Printf("Locate: Circle detection error, got '%v'", err)
	} else if len(circles) > 0 {
		largest := circles[0]
		for _, c := range circles[1:] {
			if c.Radius > largest.Radius {
				largest = c
			}
		}
		return &Position{X: largest.X, Y: largest.Y}
	}

	//no circular shape - fall back to the biggest orange blob's centroid
	centroid, err := l.ops.LargestContourCentroid(mask, l.minArea)
	if err != nil {
		log.Printf("Locate: Contour detection error, got '%v'", err)
		return nil
	}

	return centroid
}
