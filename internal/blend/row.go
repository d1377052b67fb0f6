package blend

import "github.com/gogpu/brush/internal/wide"

// Row blends n premultiplied RGBA8 source pixels into dst after scaling
// every source channel by opacity/255. Both slices hold at least 4*n bytes.
//
// Normal mode runs 16 pixels at a time on wide.BatchState; every mode falls
// back to the scalar function for the tail. Source pixels whose scaled alpha
// is zero are skipped.
func Row(dst, src []byte, n int, mode Mode, opacity uint8) {
	if n <= 0 || opacity == 0 {
		return
	}

	off := 0
	if mode == ModeNormal {
		var b wide.BatchState
		for ; n-(off/4) >= wide.BatchPixels; off += wide.BatchPixels * 4 {
			b.LoadSrc(src[off:])
			b.LoadDst(dst[off:])
			wide.SourceOverScaled(&b, opacity)
			b.StoreDst(dst[off:])
		}
	}

	fn := FuncFor(mode)
	for end := n * 4; off < end; off += 4 {
		sa := mulDiv255(src[off+3], opacity)
		if sa == 0 {
			continue
		}
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		d[0], d[1], d[2], d[3] = fn(
			mulDiv255(s[0], opacity), mulDiv255(s[1], opacity), mulDiv255(s[2], opacity), sa,
			d[0], d[1], d[2], d[3])
	}
}
