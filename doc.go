// Package brush renders freehand strokes into premultiplied raster surfaces.
//
// # Overview
//
// A stroke travels through five stages:
//
//	InputSample → Interpolate → Stamper (dabs) → mask → StrokeBuffer → Finalize
//
// Input samples are resampled along a Catmull-Rom spline at a spacing
// derived from the brush diameter. Each resampled point becomes one Dab
// whose size and alpha follow the configured pressure curves. Dabs are
// rasterized as soft Gaussian masks and accumulated into a per-stroke
// float buffer with the flow union, so overlapping dabs never push alpha
// past 1. When the stroke ends the buffer is blended onto the destination
// with the stroke opacity applied exactly once.
//
// # Quick Start
//
//	canvas, _ := brush.NewCanvas(512, 512, gputypes.TextureFormatRGBA8Unorm)
//	canvas.Fill(brush.White)
//
//	cfg := brush.DefaultConfig()
//	cfg.Diameter = 24
//	cfg.Hardness = 0.4
//	cfg.Opacity = 0.6
//
//	_, err := brush.ProcessStroke(samples, cfg, canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//	canvas.SavePNG("stroke.png")
//
// # Incremental strokes
//
// Stroke accepts samples as they arrive from an input device. Catmull-Rom
// segments are stamped as soon as their four control points are known and
// the result is identical to rendering the whole sample list at once.
//
//	s, _ := brush.NewStroke(cfg, canvas)
//	for ev := range events {
//		s.Add(ev)
//	}
//	segments, _ := s.End()
//
// # Flow and opacity
//
// Flow scales every dab and accumulates: painting over the same spot
// within one stroke builds up coverage. Opacity caps the whole stroke: no
// destination pixel receives more than Opacity of the stroke color, however
// many dabs overlap.
//
// # Concurrency
//
// Stamper, StrokeBuffer and Stroke are not safe for concurrent use.
// Independent strokes on independent buffers may run in parallel. Canvas
// can fan blending out to a worker pool, see WithParallelRows.
package brush
