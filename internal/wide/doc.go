// Package wide provides fixed-width lane types for batch pixel processing.
//
// F32x8 carries eight float32 lanes and is used by the soft mask rasterizer
// to evaluate eight pixels of a dab row at once. U16x16 carries sixteen
// integer lanes and, together with BatchState, lets the canvas blend sixteen
// premultiplied RGBA8 pixels per step.
//
// The types are plain arrays walked by simple loops so the compiler can
// vectorize them. There is no assembly and no unsafe code; every operation
// has a scalar twin elsewhere that tests compare against.
//
//	var b wide.BatchState
//	b.LoadSrc(src)
//	b.LoadDst(dst)
//	wide.SourceOverScaled(&b, opacity)
//	b.StoreDst(dst)
package wide
