package video

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chenBenjamin97/shot-analyzer/pkg/metrics"
	"github.com/chenBenjamin97/shot-analyzer/pkg/utils"
)

//Analyzer drives the detection pipeline over batches of frames. It holds only
//configuration and the ImageOps implementation, every Analyze call owns an
//independent tracker and result list, so one Analyzer serves concurrent
//sessions.
type Analyzer struct {
	cfg     Config
	locator *BallLocator
}

//NewAnalyzer creates an analyzer running the pipeline with the given configuration
func NewAnalyzer(cfg Config, ops ImageOps) *Analyzer {
	if cfg.FrameSpacingMs <= 0 {
		cfg.FrameSpacingMs = utils.DefaultFrameSpacingMs
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &Analyzer{
		cfg:     cfg,
		locator: NewBallLocator(ops, cfg),
	}
}

//Analyze runs the pipeline over an ordered batch of frames and returns the
//detected shots plus summary statistics. A nil entry stands for a frame that
//could not be decoded, it is recorded and skipped. Frame faults never abort
//the batch. The context is checked between frames only, on cancellation the
//partial report accumulated so far is returned together with ctx.Err().
func (a *Analyzer) Analyze(ctx context.Context, frames []*Frame) (*Report, error) {
	start := time.Now()
	defer func() {
		metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())
	}()

	report := &Report{Shots: make([]ShotRecord, 0)}
	tracker := NewTrajectoryTracker(a.cfg.WindowCapacity, a.cfg.ShotThreshold)

	//localization is stateless per frame, fan it out; the tracker fold below
	//stays strictly in frame order
	positions := a.locateAll(ctx, frames)

	var err error
	for i, frame := range frames {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Printf("Analyze: Canceled after %d of %d frames, got '%v'", i, len(frames), ctxErr)
			err = ctxErr
			break
		}

		if frame == nil {
			report.FrameErrors = append(report.FrameErrors, FrameError{FrameIndex: i, Reason: "frame could not be decoded"})
			metrics.FramesFailed.Inc()
			continue
		}

		if frameErr := a.processFrame(tracker, report, frame, positions[i], i); frameErr != nil {
			log.Printf("Analyze: Frame %d processing error, got '%v'", i, frameErr)
			report.FrameErrors = append(report.FrameErrors, FrameError{FrameIndex: i, Reason: frameErr.Error()})
			metrics.FramesFailed.Inc()
			continue
		}

		report.FramesProcessed++
		metrics.FramesProcessed.Inc()
	}

	report.Summary = Summarize(report.Shots)
	return report, err
}

//processFrame folds one frame into the tracker and records a shot when the
//window shows an apex. Panics are contained here so a bad frame only skips itself.
func (a *Analyzer) processFrame(tracker *TrajectoryTracker, report *Report, frame *Frame, position *Position, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered '%v'", r)
		}
	}()

	timestamp := a.frameTimestamp(frame, index)
	tracker.Update(position, timestamp)

	if !tracker.DetectShot() {
		return nil
	}

	peak := tracker.LastPosition()
	if peak == nil {
		return nil
	}

	result := ClassifyOutcome(*peak, a.cfg.Goal)
	report.Shots = append(report.Shots, ShotRecord{
		Timestamp: timestamp,
		Position: NormalizedPosition{
			X: float64(peak.X) / float64(frame.Width),
			Y: float64(peak.Y) / float64(frame.Height),
		},
		Result:     result,
		Confidence: utils.ShotConfidence,
		FrameIndex: index,
	})
	metrics.ShotsDetected.WithLabelValues(string(result)).Inc()
	log.Printf("Analyze: Shot detected at frame %d: %s", index, result)

	return nil
}

//locateAll localizes the ball in every frame, in parallel when more than one
//worker is configured. The returned slice is indexed by frame.
func (a *Analyzer) locateAll(ctx context.Context, frames []*Frame) []*Position {
	positions := make([]*Position, len(frames))

	if a.cfg.Workers <= 1 {
		for i, frame := range frames {
			if ctx.Err() != nil {
				break
			}
			if frame != nil {
				positions[i] = a.locator.Locate(frame)
			}
		}
		return positions
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.cfg.Workers)

	for i, frame := range frames {
		if ctx.Err() != nil {
			break
		}
		if frame == nil {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, frame *Frame) {
			defer wg.Done()
			defer func() { <-sem }()
			positions[i] = a.locator.Locate(frame)
		}(i, frame)
	}

	wg.Wait()
	return positions
}

func (a *Analyzer) frameTimestamp(frame *Frame, index int) float64 {
	if frame.Timestamp != nil {
		return *frame.Timestamp
	}

	return float64(index) * a.cfg.FrameSpacingMs
}

//Summarize aggregates a shot list into session statistics
func Summarize(shots []ShotRecord) Summary {
	makes := 0
	for _, s := range shots {
		if s.Result == ResultMake {
			makes++
		}
	}

	return Summary{
		TotalAttempts: len(shots),
		Makes:         makes,
		Misses:        len(shots) - makes,
		FGPercentage:  utils.Percent(makes, len(shots)),
	}
}
