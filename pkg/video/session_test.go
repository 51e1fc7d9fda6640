package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialAnalyzer(ops ImageOps) *Analyzer {
	cfg := DefaultConfig()
	cfg.Workers = 1
	return NewAnalyzer(cfg, ops)
}

//ballFrames renders one 480x360 frame per y value with the ball at x=240
func ballFrames(ys []int) []*Frame {
	frames := make([]*Frame, len(ys))
	for i, y := range ys {
		f := newTestFrame(480, 360)
		drawBall(f, 240, y, 12)
		frames[i] = f
	}
	return frames
}

func TestAnalyzeDetectsSingleShot(t *testing.T) {
	//the reversal pair (-35, +55) first qualifies once frame 5 enters the window
	frames := ballFrames([]int{150, 150, 110, 70, 35, 90})

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), frames)

	require.NoError(t, err)
	require.Len(t, report.Shots, 1)

	shot := report.Shots[0]
	assert.Equal(t, 5, shot.FrameIndex)
	assert.Equal(t, float64(5*500), shot.Timestamp) //default 500ms spacing
	assert.Equal(t, ResultMake, shot.Result)        //apex (240,90) is inside the default zone
	assert.InDelta(t, 0.5, shot.Position.X, 0.001)
	assert.InDelta(t, 0.25, shot.Position.Y, 0.001)
	assert.Equal(t, 0.75, shot.Confidence)

	assert.Equal(t, 1, report.Summary.TotalAttempts)
	assert.Equal(t, 1, report.Summary.Makes)
	assert.Equal(t, 0, report.Summary.Misses)
	assert.Equal(t, float64(100), report.Summary.FGPercentage)
	assert.Equal(t, 6, report.FramesProcessed)
	assert.Empty(t, report.FrameErrors)
}

func TestAnalyzeOverlappingWindowsRetrigger(t *testing.T) {
	//the qualifying pair stays inside the trailing window for two consecutive
	//frames; the tracker does not deduplicate apexes, so both frames record a shot
	frames := ballFrames([]int{150, 110, 70, 35, 90, 150})

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), frames)

	require.NoError(t, err)
	require.Len(t, report.Shots, 2)
	assert.Equal(t, 4, report.Shots[0].FrameIndex)
	assert.Equal(t, 5, report.Shots[1].FrameIndex)
}

func TestAnalyzeExplicitTimestamps(t *testing.T) {
	frames := ballFrames([]int{150, 150, 110, 70, 35, 90})
	for i, f := range frames {
		ts := float64(i) * 33.3
		f.Timestamp = &ts
	}

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), frames)

	require.NoError(t, err)
	require.Len(t, report.Shots, 1)
	assert.InDelta(t, 5*33.3, report.Shots[0].Timestamp, 0.001)
}

func TestAnalyzeSkipsUndecodableFrames(t *testing.T) {
	frames := ballFrames([]int{150, 150, 110, 70, 35, 90})
	frames[1] = nil //a decode failure upstream

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), frames)

	require.NoError(t, err)
	require.Len(t, report.FrameErrors, 1)
	assert.Equal(t, 1, report.FrameErrors[0].FrameIndex)
	assert.Equal(t, 5, report.FramesProcessed)

	//losing the duplicated first sample removes the flat lead-in, the
	//reversal still fires once frame 5 enters the window
	require.Len(t, report.Shots, 1)
	assert.Equal(t, 5, report.Shots[0].FrameIndex)
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, report.Shots)
	assert.Equal(t, 0, report.Summary.TotalAttempts)
	assert.Equal(t, float64(0), report.Summary.FGPercentage)
}

func TestAnalyzeNoBallStaysQuiet(t *testing.T) {
	frames := make([]*Frame, 6)
	for i := range frames {
		frames[i] = newTestFrame(480, 360)
	}

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), frames)

	require.NoError(t, err)
	assert.Empty(t, report.Shots)
	assert.Equal(t, 6, report.FramesProcessed)
}

func TestAnalyzeParallelLocalizationMatchesSequential(t *testing.T) {
	ys := []int{150, 150, 110, 70, 35, 90, 150, 150, 110, 70, 35, 90}

	cfg := DefaultConfig()
	cfg.Workers = 4
	parallel, err := NewAnalyzer(cfg, syntheticOps{}).Analyze(context.Background(), ballFrames(ys))
	require.NoError(t, err)

	sequential, err := sequentialAnalyzer(syntheticOps{}).Analyze(context.Background(), ballFrames(ys))
	require.NoError(t, err)

	assert.Equal(t, sequential.Shots, parallel.Shots)
	assert.Equal(t, sequential.Summary, parallel.Summary)
}

func TestAnalyzeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := sequentialAnalyzer(syntheticOps{}).Analyze(ctx, ballFrames([]int{150, 150, 110, 70, 35, 90}))

	assert.Equal(t, context.Canceled, err)
	//the partial report is still returned
	require.NotNil(t, report)
	assert.Equal(t, 0, report.FramesProcessed)
}

func TestSummarize(t *testing.T) {
	shots := []ShotRecord{
		{Result: ResultMake},
		{Result: ResultMiss},
		{Result: ResultMake},
	}

	s := Summarize(shots)

	assert.Equal(t, 3, s.TotalAttempts)
	assert.Equal(t, 2, s.Makes)
	assert.Equal(t, 1, s.Misses)
	assert.InDelta(t, 66.6666, s.FGPercentage, 0.001)
}
