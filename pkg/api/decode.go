package api

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chenBenjamin97/shot-analyzer/pkg/video"
)

//decodeFrame turns a transport encoded frame payload into a raw BGR raster.
//Data URLs ("data:image/...;base64,xxxx") are stripped to their base64 part.
//A payload whose decoded length is exactly width*height*3 is taken as an
//already raw BGR raster and passed through untouched.
func decodeFrame(p FramePayload) (*video.Frame, error) {
	raw := p.Data
	if strings.HasPrefix(raw, "data:image") {
		parts := strings.SplitN(raw, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("decodeFrame: Malformed data URL")
		}
		raw = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decodeFrame: Invalid base64 payload, got '%v'", err)
	}

	if p.Width > 0 && p.Height > 0 && len(data) == p.Width*p.Height*3 {
		return &video.Frame{Pixels: data, Width: p.Width, Height: p.Height, Timestamp: p.Timestamp}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decodeFrame: Could not decode image, got '%v'", err)
	}

	return imageToFrame(img, p.Timestamp), nil
}

//imageToFrame flattens a decoded image into a BGR byte raster, the channel
//order OpenCV expects
func imageToFrame(img image.Image, timestamp *float64) *video.Frame {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]byte, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, byte(b>>8), byte(g>>8), byte(r>>8))
		}
	}

	return &video.Frame{Pixels: pixels, Width: width, Height: height, Timestamp: timestamp}
}
