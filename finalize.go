package brush

// Finalize exports the accumulated stroke in buf and, when dst is not nil,
// blends it onto dst with opacity applied exactly once.
//
// An empty buffer is a no-op and reports false. With a nil dst only the
// segment is produced, for callers that composite elsewhere. Finalize
// panics if dst has a format other than RGBA8Unorm or BGRA8Unorm. buf is
// left untouched; callers Reset it for the next stroke.
func Finalize(buf *StrokeBuffer, dst Surface, opacity float64, mode BlendMode) (Segment, bool) {
	return finalize(buf, dst, opacity, mode, nil)
}

func finalize(buf *StrokeBuffer, dst Surface, opacity float64, mode BlendMode, pixels []byte) (Segment, bool) {
	if buf.Empty() {
		return Segment{}, false
	}
	if dst != nil {
		mustSupport(dst)
	}

	seg := Segment{
		Rect:    buf.Bounds(),
		Pixels:  buf.Premultiplied(pixels),
		Opacity: min(max(opacity, 0), 1),
		Mode:    mode,
	}
	if dst != nil {
		dst.BlendInto(seg.Rect, seg.Pixels, seg.Opacity, mode)
	}
	return seg, true
}
