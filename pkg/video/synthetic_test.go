package video

//syntheticOps implements the ImageOps interface in pure Go with naive
//algorithms, so the pipeline can be exercised end to end without OpenCV.
type syntheticOps struct{}

//ToHSV converts BGR bytes to OpenCV scale HSV (H 0-180, S/V 0-255)
func (syntheticOps) ToHSV(frame *Frame) (*Frame, error) {
	out := make([]byte, len(frame.Pixels))
	for i := 0; i+2 < len(frame.Pixels); i += 3 {
		b := float64(frame.Pixels[i])
		g := float64(frame.Pixels[i+1])
		r := float64(frame.Pixels[i+2])

		max := r
		if g > max {
			max = g
		}
		if b > max {
			max = b
		}
		min := r
		if g < min {
			min = g
		}
		if b < min {
			min = b
		}
		delta := max - min

		v := max
		s := 0.0
		if max > 0 {
			s = 255 * delta / max
		}
		h := 0.0
		if delta > 0 {
			switch max {
			case r:
				h = 60 * (g - b) / delta
			case g:
				h = 120 + 60*(b-r)/delta
			default:
				h = 240 + 60*(r-g)/delta
			}
			if h < 0 {
				h += 360
			}
		}

		out[i] = byte(h / 2)
		out[i+1] = byte(s)
		out[i+2] = byte(v)
	}

	return &Frame{Pixels: out, Width: frame.Width, Height: frame.Height, Timestamp: frame.Timestamp}, nil
}

//InRange thresholds each pixel against the band
func (syntheticOps) InRange(hsv *Frame, lower, upper HSV) (*Mask, error) {
	mask := &Mask{Pixels: make([]byte, hsv.Width*hsv.Height), Width: hsv.Width, Height: hsv.Height}
	for p := 0; p < hsv.Width*hsv.Height; p++ {
		h := float64(hsv.Pixels[p*3])
		s := float64(hsv.Pixels[p*3+1])
		v := float64(hsv.Pixels[p*3+2])
		if h >= lower.H && h <= upper.H && s >= lower.S && s <= upper.S && v >= lower.V && v <= upper.V {
			mask.Pixels[p] = 255
		}
	}
	return mask, nil
}

//Denoise is a no-op, synthetic frames carry no speckle
func (syntheticOps) Denoise(mask *Mask) (*Mask, error) {
	return mask, nil
}

//DetectCircles approximates the Hough pass with the bounding box of the on pixels
func (syntheticOps) DetectCircles(mask *Mask, params CircleParams) ([]Circle, error) {
	minX, minY, maxX, maxY := mask.Width, mask.Height, -1, -1
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if mask.Pixels[y*mask.Width+x] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return nil, nil
	}

	radius := (maxX - minX + 1) / 2
	if dy := (maxY - minY + 1) / 2; dy > radius {
		radius = dy
	}
	if radius < params.MinRadius || radius > params.MaxRadius {
		return nil, nil
	}

	return []Circle{{X: (minX + maxX) / 2, Y: (minY + maxY) / 2, Radius: radius}}, nil
}

//LargestContourCentroid returns the centroid of all on pixels when their count exceeds minArea
func (syntheticOps) LargestContourCentroid(mask *Mask, minArea float64) (*Position, error) {
	count, sumX, sumY := 0, 0, 0
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if mask.Pixels[y*mask.Width+x] != 0 {
				count++
				sumX += x
				sumY += y
			}
		}
	}

	if float64(count) <= minArea {
		return nil, nil
	}

	return &Position{X: sumX / count, Y: sumY / count}, nil
}

//newTestFrame allocates an all black BGR frame
func newTestFrame(width, height int) *Frame {
	return &Frame{Pixels: make([]byte, width*height*3), Width: width, Height: height}
}

//newGrayFrame allocates a uniform gray BGR frame
func newGrayFrame(width, height int) *Frame {
	f := newTestFrame(width, height)
	for i := range f.Pixels {
		f.Pixels[i] = 128
	}
	return f
}

//drawBall paints a filled orange disc (BGR 0,165,255) centered at (cx, cy)
func drawBall(f *Frame, cx, cy, radius int) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			i := (y*f.Width + x) * 3
			f.Pixels[i] = 0
			f.Pixels[i+1] = 165
			f.Pixels[i+2] = 255
		}
	}
}
