package brush

import (
	"image"
	"log/slog"
	"slices"

	imgbuf "github.com/gogpu/brush/internal/image"
)

// DefaultMaxBufferPixels bounds the stroke buffer at 4096×4096 pixels.
const DefaultMaxBufferPixels = 4096 * 4096

// segmentPool recycles segment pixels of strokes that do not retain them.
var segmentPool = imgbuf.NewPool(16)

// StrokeOption configures a Stroke.
type StrokeOption func(*strokeOptions)

type strokeOptions struct {
	maxPixels      int
	clip           *bool
	retain         bool
	flushToSurface bool
}

func defaultStrokeOptions() strokeOptions {
	return strokeOptions{maxPixels: DefaultMaxBufferPixels, retain: true}
}

// WithMaxBufferPixels limits the stroke buffer to n pixels. When a dab
// would grow the buffer past the limit the accumulated part is sealed into
// a segment and a fresh buffer continues. Where segments overlap the
// opacity ceiling holds per segment only. n <= 0 restores the default.
func WithMaxBufferPixels(n int) StrokeOption {
	return func(o *strokeOptions) {
		if n <= 0 {
			n = DefaultMaxBufferPixels
		}
		o.maxPixels = n
	}
}

// WithClip controls whether dab masks are clipped to the destination
// bounds. It defaults to true when the stroke has a destination.
func WithClip(clip bool) StrokeOption {
	return func(o *strokeOptions) {
		o.clip = &clip
	}
}

// WithRetainSegments controls whether End returns segment pixels. When
// false, pixels are borrowed from an internal pool and handed back after
// blending, and the returned segments carry only their rectangles. Strokes
// without a destination always retain pixels.
func WithRetainSegments(retain bool) StrokeOption {
	return func(o *strokeOptions) {
		o.retain = retain
	}
}

// WithFlushToSurface blends each segment onto the destination as soon as it
// is sealed, so a long stroke split by WithMaxBufferPixels holds at most one
// segment at a time when pixels are not retained. Cancel cannot take back
// segments already blended. It has no effect without a destination.
func WithFlushToSurface(flush bool) StrokeOption {
	return func(o *strokeOptions) {
		o.flushToSurface = flush
	}
}

// Stroke renders one stroke incrementally. Samples are added as they
// arrive; End blends the result onto the destination. Nothing reaches the
// destination before End, and Cancel discards the stroke.
//
// A Stroke is not safe for concurrent use.
type Stroke struct {
	stamper *Stamper
	dst     Surface
	opts    strokeOptions
	clip    image.Rectangle

	ip   *interpolator
	emit func(InputSample) bool
	buf  *StrokeBuffer
	mask Mask

	segments []Segment
	blended  int // segments already on dst
	samples  int
	dabs     int
	done     bool
}

// NewStroke starts a stroke with cfg. dst may be nil, in which case End
// only returns segments. NewStroke rejects an invalid cfg and panics if dst
// has an unsupported format.
func NewStroke(cfg Config, dst Surface, opts ...StrokeOption) (*Stroke, error) {
	st, err := NewStamper(cfg)
	if err != nil {
		return nil, err
	}
	o := defaultStrokeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if dst == nil {
		o.retain = true
	} else {
		mustSupport(dst)
	}

	s := &Stroke{
		stamper: st,
		dst:     dst,
		opts:    o,
		ip:      newStampInterpolator(cfg.Interpolation, cfg.PixelSpacing()),
		buf:     NewStrokeBuffer(),
	}
	if dst != nil && (o.clip == nil || *o.clip) {
		s.clip = dst.Bounds()
	}
	s.emit = s.stamp

	Logger().Debug("brush: stroke started",
		slog.Float64("diameter", cfg.Diameter),
		slog.String("blend", cfg.BlendMode.String()),
		slog.String("interpolation", cfg.Interpolation.String()))
	return s, nil
}

// Add feeds samples to the stroke. Pressure and tilt are clamped to their
// valid ranges. Dabs are stamped as soon as the interpolated curve through
// them is known.
func (s *Stroke) Add(samples ...InputSample) error {
	if s.done {
		return ErrStrokeDone
	}
	for _, in := range samples {
		s.samples++
		s.ip.push(in.Clamp(), s.emit)
	}
	return nil
}

// stamp renders one resampled point.
func (s *Stroke) stamp(in InputSample) bool {
	d, ok := s.stamper.Dab(s.stamper.Point(in))
	if !ok {
		return true
	}
	m := s.stamper.Mask(d, s.clip, &s.mask)
	if m.Rect.Empty() {
		return true
	}

	if !s.buf.Empty() {
		u := s.buf.Bounds().Union(m.Rect)
		if u.Dx()*u.Dy() > s.opts.maxPixels {
			Logger().Debug("brush: stroke buffer full, flushing",
				slog.Int("pixels", s.buf.Pixels()),
				slog.Int("limit", s.opts.maxPixels))
			s.Flush()
		}
	}
	if area := m.Rect.Dx() * m.Rect.Dy(); area > s.opts.maxPixels {
		Logger().Warn("brush: dab exceeds stroke buffer limit",
			slog.Int("pixels", area),
			slog.Int("limit", s.opts.maxPixels),
			slog.Float64("radius", d.Radius))
	}

	s.buf.Composite(d, m, s.stamper.cfg.Color)
	s.dabs++
	return true
}

// Flush seals everything accumulated so far into a segment and starts a
// fresh buffer. Points the interpolator still holds back are not affected.
func (s *Stroke) Flush() {
	if s.done || s.buf.Empty() {
		return
	}
	var pixels []byte
	if !s.opts.retain {
		pixels = segmentPool.Get(s.buf.Pixels() * 4)
	}
	cfg := s.stamper.cfg
	seg, _ := finalize(s.buf, nil, cfg.Opacity, cfg.BlendMode, pixels)
	s.segments = append(s.segments, seg)
	s.buf.Reset()
	if s.opts.flushToSurface && s.dst != nil {
		s.blendPending()
	}
}

// blendPending blends the segments not yet on dst, in order, and hands
// pooled pixels back.
func (s *Stroke) blendPending() {
	for i := s.blended; i < len(s.segments); i++ {
		seg := &s.segments[i]
		s.dst.BlendInto(seg.Rect, seg.Pixels, seg.Opacity, seg.Mode)
		if !s.opts.retain {
			segmentPool.Put(seg.Pixels)
			seg.Pixels = nil
		}
	}
	s.blended = len(s.segments)
}

// End completes the stroke, blends all segments onto the destination in
// order and returns them. An empty stroke returns no segments.
func (s *Stroke) End() ([]Segment, error) {
	if s.done {
		return nil, ErrStrokeDone
	}
	s.ip.finish(s.emit)
	s.Flush()
	s.done = true

	if s.dst != nil {
		s.blendPending()
	}
	segs := s.segments
	s.segments = nil

	Logger().Debug("brush: stroke ended",
		slog.Int("samples", s.samples),
		slog.Int("dabs", s.dabs),
		slog.Int("segments", len(segs)))
	return segs, nil
}

// Cancel discards the stroke. The destination is left untouched, except for
// segments WithFlushToSurface already blended. Cancel is idempotent and may
// follow End.
func (s *Stroke) Cancel() {
	if s.done {
		return
	}
	s.done = true
	s.ip.reset()
	s.buf.Reset()
	if !s.opts.retain {
		for _, seg := range s.segments[s.blended:] {
			segmentPool.Put(seg.Pixels)
		}
	}
	s.segments = nil
	Logger().Debug("brush: stroke cancelled", slog.Int("dabs", s.dabs))
}

// Dabs returns the number of dabs composited so far.
func (s *Stroke) Dabs() int {
	return s.dabs
}

// ProcessStroke renders a complete stroke onto dst and returns its
// segments. dst may be nil to obtain the segments only.
func ProcessStroke(samples []InputSample, cfg Config, dst Surface, opts ...StrokeOption) ([]Segment, error) {
	s, err := NewStroke(cfg, dst, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Add(samples...); err != nil {
		return nil, err
	}
	return s.End()
}

// StrokeDabs returns the dabs a stroke would stamp without rasterizing
// them, for renderers that draw dabs themselves.
func StrokeDabs(samples []InputSample, cfg Config) ([]Dab, error) {
	st, err := NewStamper(cfg)
	if err != nil {
		return nil, err
	}
	clamped := make([]InputSample, len(samples))
	for i, in := range samples {
		clamped[i] = in.Clamp()
	}
	return slices.Collect(st.Dabs(st.Samples(clamped))), nil
}
