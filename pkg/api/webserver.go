package api

import (
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/chenBenjamin97/shot-analyzer/pkg/video"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gocv.io/x/gocv"
)

//SetRouter builds the HTTP surface around the given analyzer. Every origin is
//allowed to call the API, the browser clients recording the frames are served
//from elsewhere.
func SetRouter(analyzer *video.Analyzer) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Basketball shot analysis server is running",
			"version":   Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/Version", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"version":        Version,
			"go_version":     runtime.Version(),
			"gocv_version":   gocv.Version(),
			"opencv_version": gocv.OpenCVVersion(),
		})
	})

	apiRoutes.POST("/Analyze", func(ctx *gin.Context) {
		var req AnalyzeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
			return
		}

		if req.Frames == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No frames data provided"})
			return
		}

		sessionID := uuid.New().String()
		log.Printf("api/Analyze: Session %s: analyzing %d frames", sessionID, len(req.Frames))

		//a nil entry marks a frame the analyzer must record as undecodable and skip
		frames := make([]*video.Frame, len(req.Frames))
		for i, payload := range req.Frames {
			frame, err := decodeFrame(payload)
			if err != nil {
				log.Printf("api/Analyze: Session %s: frame %d decode error, got '%v'", sessionID, i, err)
				continue
			}
			frames[i] = frame
		}

		report, err := analyzer.Analyze(ctx.Request.Context(), frames)
		if err != nil {
			//canceled mid-batch: the partial report is still worth returning
			log.Printf("api/Analyze: Session %s: analysis interrupted, got '%v'", sessionID, err)
		}

		metadata := map[string]interface{}{
			"session_id":       sessionID,
			"frames_processed": report.FramesProcessed,
			"frames_failed":    len(report.FrameErrors),
			"processing_time":  time.Now().Format(time.RFC3339),
		}
		for k, v := range req.Metadata {
			metadata[k] = v
		}

		log.Printf("api/Analyze: Session %s: analysis complete, %d shots detected (%d makes, %d misses)",
			sessionID, report.Summary.TotalAttempts, report.Summary.Makes, report.Summary.Misses)

		ctx.JSON(http.StatusOK, AnalyzeResponse{
			Shots:       report.Shots,
			Summary:     report.Summary,
			FrameErrors: report.FrameErrors,
			Metadata:    metadata,
		})
	})

	return r
}
