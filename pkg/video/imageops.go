package video

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

//ImageOps is the image processing capability the ball locator depends on.
//OpenCVOps is the production implementation, MockOps and test doubles stand in where OpenCV is unavailable.
type ImageOps interface {
	//ToHSV converts a BGR frame to the HSV color space
	ToHSV(frame *Frame) (*Frame, error)

	//InRange produces a binary mask of the pixels whose HSV value falls inside [lower, upper]
	InRange(hsv *Frame, lower, upper HSV) (*Mask, error)

	//Denoise applies a morphological opening followed by a closing, both with a 3x3 kernel
	Denoise(mask *Mask) (*Mask, error)

	//DetectCircles runs a Hough circle search on a binary mask
	DetectCircles(mask *Mask, params CircleParams) ([]Circle, error)

	//LargestContourCentroid finds the external contour with the largest enclosed area above minArea
	//and returns its centroid from the first order image moments. Returns nil when no contour qualifies.
	LargestContourCentroid(mask *Mask, minArea float64) (*Position, error)
}

//OpenCVOps implements ImageOps on top of gocv
type OpenCVOps struct{}

//NewOpenCVOps returns the gocv backed implementation of ImageOps
func NewOpenCVOps() *OpenCVOps {
	return &OpenCVOps{}
}

func frameToMat(f *Frame) (gocv.Mat, error) {
	if len(f.Pixels) != f.Width*f.Height*3 {
		return gocv.Mat{}, fmt.Errorf("frameToMat: Expected %d bytes, got %d", f.Width*f.Height*3, len(f.Pixels))
	}

	return gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, f.Pixels)
}

func maskToMat(m *Mask) (gocv.Mat, error) {
	if len(m.Pixels) != m.Width*m.Height {
		return gocv.Mat{}, fmt.Errorf("maskToMat: Expected %d bytes, got %d", m.Width*m.Height, len(m.Pixels))
	}

	return gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8UC1, m.Pixels)
}

//ToHSV converts a BGR frame to HSV
func (o *OpenCVOps) ToHSV(frame *Frame) (*Frame, error) {
	src, err := frameToMat(frame)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.CvtColor(src, &dst, gocv.ColorBGRToHSV)

	data, err := dst.ToBytes()
	if err != nil {
		return nil, err
	}

	return &Frame{Pixels: data, Width: frame.Width, Height: frame.Height, Timestamp: frame.Timestamp}, nil
}

//InRange produces a binary mask of the pixels inside the given HSV band
func (o *OpenCVOps) InRange(hsv *Frame, lower, upper HSV) (*Mask, error) {
	src, err := frameToMat(hsv)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	lb := gocv.NewScalar(lower.H, lower.S, lower.V, 0)
	ub := gocv.NewScalar(upper.H, upper.S, upper.V, 0)
	gocv.InRangeWithScalar(src, lb, ub, &dst)

	data, err := dst.ToBytes()
	if err != nil {
		return nil, err
	}

	return &Mask{Pixels: data, Width: hsv.Width, Height: hsv.Height}, nil
}

//Denoise removes speckle and fills small gaps with a 3x3 opening then closing
func (o *OpenCVOps) Denoise(mask *Mask) (*Mask, error) {
	src, err := maskToMat(mask)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(src, &opened, gocv.MorphOpen, kernel)

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(opened, &closed, gocv.MorphClose, kernel)

	data, err := closed.ToBytes()
	if err != nil {
		return nil, err
	}

	return &Mask{Pixels: data, Width: mask.Width, Height: mask.Height}, nil
}

//DetectCircles runs a gradient Hough circle search on the mask
func (o *OpenCVOps) DetectCircles(mask *Mask, params CircleParams) ([]Circle, error) {
	src, err := maskToMat(mask)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	circlesMat := gocv.NewMat()
	defer circlesMat.Close()

	gocv.HoughCirclesWithParams(src, &circlesMat, gocv.HoughGradient,
		params.AccumulatorRes, params.MinCenterDist,
		params.EdgeThreshold, params.AccumThreshold,
		params.MinRadius, params.MaxRadius)

	circles := make([]Circle, 0, circlesMat.Cols())
	for i := 0; i < circlesMat.Cols(); i++ {
		v := circlesMat.GetVecfAt(0, i)
		if len(v) > 2 {
			circles = append(circles, Circle{X: int(v[0]), Y: int(v[1]), Radius: int(v[2])})
		}
	}

	return circles, nil
}

//LargestContourCentroid picks the biggest external contour above minArea and returns its moment centroid
func (o *OpenCVOps) LargestContourCentroid(mask *Mask, minArea float64) (*Position, error) {
	src, err := maskToMat(mask)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contours := gocv.FindContours(src, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	best := -1
	bestArea := minArea
	for i := 0; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			bestArea = area
			best = i
		}
	}

	if best < 0 {
		return nil, nil
	}

	//rasterize only the winning contour so the moments cover a single blob
	single := gocv.NewMatWithSize(mask.Height, mask.Width, gocv.MatTypeCV8UC1)
	defer single.Close()

	pts := gocv.NewPointsVector()
	defer pts.Close()
	pts.Append(contours.At(best))
	gocv.FillPoly(&single, pts, color.RGBA{255, 255, 255, 0})

	m := gocv.Moments(single, true)
	if m["m00"] == 0 {
		return nil, nil
	}

	return &Position{X: int(m["m10"] / m["m00"]), Y: int(m["m01"] / m["m00"])}, nil
}
