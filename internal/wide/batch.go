package wide

// BatchState holds 16 RGBA pixels in Structure-of-Arrays layout:
//
//	SR: [R0, R1, ..., R15]
//	SG: [G0, G1, ..., G15]
//	...
//
// so every channel can be processed as one U16x16.
type BatchState struct {
	SR, SG, SB, SA U16x16 // source, premultiplied
	DR, DG, DB, DA U16x16 // destination, premultiplied
}

// BatchPixels is the number of pixels a BatchState carries.
const BatchPixels = 16

// LoadSrc loads 16 RGBA pixels (64 bytes) into the source lanes.
func (b *BatchState) LoadSrc(src []byte) {
	_ = src[BatchPixels*4-1]
	for i := 0; i < BatchPixels; i++ {
		o := i * 4
		b.SR[i] = uint16(src[o+0])
		b.SG[i] = uint16(src[o+1])
		b.SB[i] = uint16(src[o+2])
		b.SA[i] = uint16(src[o+3])
	}
}

// LoadDst loads 16 RGBA pixels (64 bytes) into the destination lanes.
func (b *BatchState) LoadDst(dst []byte) {
	_ = dst[BatchPixels*4-1]
	for i := 0; i < BatchPixels; i++ {
		o := i * 4
		b.DR[i] = uint16(dst[o+0])
		b.DG[i] = uint16(dst[o+1])
		b.DB[i] = uint16(dst[o+2])
		b.DA[i] = uint16(dst[o+3])
	}
}

// StoreDst writes the destination lanes back as 16 RGBA pixels.
func (b *BatchState) StoreDst(dst []byte) {
	_ = dst[BatchPixels*4-1]
	for i := 0; i < BatchPixels; i++ {
		o := i * 4
		// Lanes are clamped to 255 by every operator that writes them.
		dst[o+0] = uint8(b.DR[i]) // #nosec G115
		dst[o+1] = uint8(b.DG[i]) // #nosec G115
		dst[o+2] = uint8(b.DB[i]) // #nosec G115
		dst[o+3] = uint8(b.DA[i]) // #nosec G115
	}
}
