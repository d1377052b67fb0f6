// Command brushdemo renders a sample pen stroke with the brush pipeline.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/brush"
	"github.com/gogpu/gputypes"
)

func main() {
	var (
		config  = flag.String("config", "", "brush config file (TOML)")
		width   = flag.Int("width", 1200, "image width")
		height  = flag.Int("height", 800, "image height")
		output  = flag.String("output", "stroke.png", "output file (.png, .tif, .tiff)")
		points  = flag.Int("points", 500, "number of input samples")
		bgra    = flag.Bool("bgra", false, "render into a BGRA canvas")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := brush.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = brush.LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	format := gputypes.TextureFormatRGBA8Unorm
	if *bgra {
		format = gputypes.TextureFormatBGRA8Unorm
	}

	canvas, err := brush.NewCanvas(*width, *height, format, brush.WithParallelRows(0))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer canvas.Close()
	canvas.Fill(brush.White)

	samples := sineStroke(*points, float64(*width), float64(*height))
	if _, err := brush.ProcessStroke(samples, cfg, canvas); err != nil {
		log.Fatalf("Failed to render stroke: %v", err)
	}

	if err := canvas.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Stroke saved to %s (%dx%d, %d samples)\n", *output, *width, *height, len(samples))
}

// sineStroke returns two periods of a sine wave spanning the canvas with
// pressure ramping from 0.3 to 0.7.
func sineStroke(n int, w, h float64) []brush.InputSample {
	if n < 1 {
		n = 1
	}
	margin := w / 12
	amp := h / 8
	out := make([]brush.InputSample, n)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = brush.InputSample{
			X:           margin + t*(w-2*margin),
			Y:           math.Sin(t*math.Pi*4)*amp + h/2,
			Pressure:    0.3 + t*0.4,
			TimestampMs: uint64(i),
		}
	}
	return out
}
