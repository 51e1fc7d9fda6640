package api

import "github.com/chenBenjamin97/shot-analyzer/pkg/video"

//Version is the server version reported by the health and version endpoints
const Version = "1.0.0"

//FramePayload is one frame of an analysis request. Data carries either a
//base64 encoded JPEG/PNG (optionally as a data URL) or a base64 encoded raw
//BGR raster of exactly width*height*3 bytes. Timestamp is in milliseconds.
type FramePayload struct {
	Data      string   `json:"data"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Timestamp *float64 `json:"timestamp,omitempty"`
}

//AnalyzeRequest is the body of POST /api/Analyze. Metadata is free form and
//echoed back unchanged in the response.
type AnalyzeRequest struct {
	Frames   []FramePayload         `json:"frames"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

//AnalyzeResponse is the body returned by POST /api/Analyze
type AnalyzeResponse struct {
	Shots       []video.ShotRecord     `json:"shots"`
	Summary     video.Summary          `json:"summary"`
	FrameErrors []video.FrameError     `json:"frame_errors,omitempty"`
	Metadata    map[string]interface{} `json:"metadata"`
}
