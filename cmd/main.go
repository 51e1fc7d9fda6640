package main

import (
	"log"

	"github.com/chenBenjamin97/shot-analyzer/pkg/api"
	"github.com/chenBenjamin97/shot-analyzer/pkg/video"
	"github.com/spf13/viper"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	setDefaults()
	viper.BindEnv("http.port", "PORT")

	//every key has a default, the config file only overrides
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file, using defaults, got '%v'", err)
	}

	analyzer := video.NewAnalyzer(analysisConfig(), video.NewOpenCVOps())

	r := api.SetRouter(analyzer)
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		log.Fatalf("Error: Got '%v'", err)
	}
}

func setDefaults() {
	d := video.DefaultConfig()

	viper.SetDefault("http.port", "8000")

	viper.SetDefault("analysis.shot_threshold", d.ShotThreshold)
	viper.SetDefault("analysis.window_capacity", d.WindowCapacity)
	viper.SetDefault("analysis.frame_spacing_ms", d.FrameSpacingMs)
	viper.SetDefault("analysis.workers", d.Workers)

	viper.SetDefault("color.lower.h", d.LowerBand.H)
	viper.SetDefault("color.lower.s", d.LowerBand.S)
	viper.SetDefault("color.lower.v", d.LowerBand.V)
	viper.SetDefault("color.upper.h", d.UpperBand.H)
	viper.SetDefault("color.upper.s", d.UpperBand.S)
	viper.SetDefault("color.upper.v", d.UpperBand.V)

	viper.SetDefault("goal.x_min", d.Goal.XMin)
	viper.SetDefault("goal.x_max", d.Goal.XMax)
	viper.SetDefault("goal.y_min", d.Goal.YMin)
	viper.SetDefault("goal.y_max", d.Goal.YMax)
}

func analysisConfig() video.Config {
	return video.Config{
		LowerBand: video.HSV{
			H: viper.GetFloat64("color.lower.h"),
			S: viper.GetFloat64("color.lower.s"),
			V: viper.GetFloat64("color.lower.v"),
		},
		UpperBand: video.HSV{
			H: viper.GetFloat64("color.upper.h"),
			S: viper.GetFloat64("color.upper.s"),
			V: viper.GetFloat64("color.upper.v"),
		},
		ShotThreshold:  viper.GetInt("analysis.shot_threshold"),
		WindowCapacity: viper.GetInt("analysis.window_capacity"),
		Goal: video.GoalZone{
			XMin: viper.GetInt("goal.x_min"),
			XMax: viper.GetInt("goal.x_max"),
			YMin: viper.GetInt("goal.y_min"),
			YMax: viper.GetInt("goal.y_max"),
		},
		FrameSpacingMs: viper.GetFloat64("analysis.frame_spacing_ms"),
		Workers:        viper.GetInt("analysis.workers"),
	}
}
