package utils

//DefaultShotThreshold is the minimum vertical movement (pixels between consecutive samples) that counts as strong motion
const DefaultShotThreshold = 30

//DefaultTrajectoryCapacity is the maximum number of samples kept in a trajectory window
const DefaultTrajectoryCapacity = 50

//MinShotSamples is the number of trailing trajectory samples analyzed for a shot apex
const MinShotSamples = 5

//ShotConfidence is the confidence attached to every detected shot.
//The detector has no real confidence model, this is a documented fixed value.
const ShotConfidence = 0.75

//MinContourArea is the minimum enclosed area (px^2) for a contour to be considered a ball candidate
const MinContourArea = 100

//DefaultFrameSpacingMs is the assumed gap between frames when the caller omits timestamps
const DefaultFrameSpacingMs = 500

//DefaultAnalysisWorkers is the number of goroutines localizing frames in parallel
const DefaultAnalysisWorkers = 4

//Orange band a basketball is expected to fall into (HSV, OpenCV scale: H 0-180, S/V 0-255)
const (
	DefaultLowerHue        = 10
	DefaultLowerSaturation = 50
	DefaultLowerValue      = 50
	DefaultUpperHue        = 25
	DefaultUpperSaturation = 255
	DefaultUpperValue      = 255
)

//Default goal zone rectangle (pixels), calibrated against a 480px wide reference frame
const (
	DefaultGoalXMin = 200
	DefaultGoalXMax = 280
	DefaultGoalYMin = 50
	DefaultGoalYMax = 120
)

//Hough circle search parameters for the ball shape pass
const (
	CircleAccumulatorRes = 1
	CircleMinCenterDist  = 20
	CircleEdgeThreshold  = 50
	CircleAccumThreshold = 30
	CircleMinRadius      = 5
	CircleMaxRadius      = 50
)
