package video

import "github.com/chenBenjamin97/shot-analyzer/pkg/utils"

//Position is a pixel coordinate inside a frame
type Position struct {
	X int
	Y int
}

//HSV is a color in OpenCV's HSV scale (H 0-180, S/V 0-255)
type HSV struct {
	H float64
	S float64
	V float64
}

//Frame is a decoded raster: Pixels holds height*width*3 bytes in BGR order, row major.
//Timestamp is in milliseconds, nil when the caller did not supply one.
type Frame struct {
	Pixels    []byte
	Width     int
	Height    int
	Timestamp *float64
}

//Mask is a single channel binary image, one byte per pixel, row major
type Mask struct {
	Pixels []byte
	Width  int
	Height int
}

//Circle is a detected circular shape on a mask
type Circle struct {
	X      int
	Y      int
	Radius int
}

//CircleParams are the Hough circle search parameters
type CircleParams struct {
	AccumulatorRes float64
	MinCenterDist  float64
	EdgeThreshold  float64
	AccumThreshold float64
	MinRadius      int
	MaxRadius      int
}

type trajectorySample struct {
	Position  Position
	Timestamp float64
	X         int
	Y         int
}

//Result is a shot outcome
type Result string

const (
	//ResultMake marks a successful shot
	ResultMake Result = "make"
	//ResultMiss marks a missed shot
	ResultMiss Result = "miss"
)

//NormalizedPosition is a position scaled to [0,1] by the frame dimensions
type NormalizedPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

//ShotRecord is one detected shot attempt
type ShotRecord struct {
	Timestamp  float64            `json:"timestamp"`
	Position   NormalizedPosition `json:"position"`
	Result     Result             `json:"result"`
	Confidence float64            `json:"confidence"`
	FrameIndex int                `json:"frame_index"`
}

//Summary aggregates the shots of one analysis session
type Summary struct {
	TotalAttempts int     `json:"total_attempts"`
	Makes         int     `json:"makes"`
	Misses        int     `json:"misses"`
	FGPercentage  float64 `json:"fg_percentage"`
}

//FrameError reports a frame that was skipped and why
type FrameError struct {
	FrameIndex int    `json:"frame_index"`
	Reason     string `json:"reason"`
}

//Report is the result of analyzing one batch of frames
type Report struct {
	Shots           []ShotRecord `json:"shots"`
	Summary         Summary      `json:"summary"`
	FrameErrors     []FrameError `json:"frame_errors,omitempty"`
	FramesProcessed int          `json:"frames_processed"`
}

//GoalZone is the inclusive pixel rectangle that counts as a successful shot location
type GoalZone struct {
	XMin int
	XMax int
	YMin int
	YMax int
}

//Config holds every tunable of the analysis pipeline
type Config struct {
	LowerBand      HSV
	UpperBand      HSV
	ShotThreshold  int
	WindowCapacity int
	Goal           GoalZone
	FrameSpacingMs float64
	Workers        int
}

//DefaultConfig returns the pipeline configuration calibrated for a 480px wide reference frame
func DefaultConfig() Config {
	return Config{
		LowerBand:      HSV{H: utils.DefaultLowerHue, S: utils.DefaultLowerSaturation, V: utils.DefaultLowerValue},
		UpperBand:      HSV{H: utils.DefaultUpperHue, S: utils.DefaultUpperSaturation, V: utils.DefaultUpperValue},
		ShotThreshold:  utils.DefaultShotThreshold,
		WindowCapacity: utils.DefaultTrajectoryCapacity,
		Goal: GoalZone{
			XMin: utils.DefaultGoalXMin,
			XMax: utils.DefaultGoalXMax,
			YMin: utils.DefaultGoalYMin,
			YMax: utils.DefaultGoalYMax,
		},
		FrameSpacingMs: utils.DefaultFrameSpacingMs,
		Workers:        utils.DefaultAnalysisWorkers,
	}
}

//DefaultCircleParams returns the Hough search parameters for the ball shape pass
func DefaultCircleParams() CircleParams {
	return CircleParams{
		AccumulatorRes: utils.CircleAccumulatorRes,
		MinCenterDist:  utils.CircleMinCenterDist,
		EdgeThreshold:  utils.CircleEdgeThreshold,
		AccumThreshold: utils.CircleAccumThreshold,
		MinRadius:      utils.CircleMinRadius,
		MaxRadius:      utils.CircleMaxRadius,
	}
}
