//Package metrics exposes the Prometheus counters of the analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shot_analyzer"

var (
	//FramesProcessed counts frames that went through the localization pipeline
	FramesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_processed_total",
		Help:      "Number of frames processed by the analysis pipeline.",
	})

	//FramesFailed counts frames skipped because of a decode or processing fault
	FramesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_failed_total",
		Help:      "Number of frames skipped due to decode or processing faults.",
	})

	//ShotsDetected counts detected shots by result
	ShotsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shots_detected_total",
		Help:      "Number of detected shot attempts by result.",
	}, []string{"result"})

	//AnalyzeDuration observes how long whole-batch analysis takes
	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analyze_duration_seconds",
		Help:      "Duration of full batch analysis.",
		Buckets:   prometheus.DefBuckets,
	})
)
