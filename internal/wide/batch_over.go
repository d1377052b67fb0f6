package wide

// SourceOverScaled scales 16 source pixels by a constant opacity and
// composites them over the destination lanes:
//
//	S' = S * opacity/255
//	D  = S' + D * (255 - S'a)/255
//
// A source pixel whose scaled alpha is zero leaves its destination lane
// unchanged, since MulDiv255(x, 255) == x.
func SourceOverScaled(b *BatchState, opacity uint8) {
	if opacity == 0 {
		return
	}
	if opacity == 255 {
		SourceOver(b)
		return
	}

	op := SplatU16(uint16(opacity))
	sr := b.SR.MulDiv255(op)
	sg := b.SG.MulDiv255(op)
	sb := b.SB.MulDiv255(op)
	sa := b.SA.MulDiv255(op)

	inv := sa.Inv()
	b.DR = sr.Add(b.DR.MulDiv255(inv)).Clamp(255)
	b.DG = sg.Add(b.DG.MulDiv255(inv)).Clamp(255)
	b.DB = sb.Add(b.DB.MulDiv255(inv)).Clamp(255)
	b.DA = sa.Add(b.DA.MulDiv255(inv)).Clamp(255)
}

// SourceOver composites the source lanes over the destination lanes.
func SourceOver(b *BatchState) {
	inv := b.SA.Inv()
	b.DR = b.SR.Add(b.DR.MulDiv255(inv)).Clamp(255)
	b.DG = b.SG.Add(b.DG.MulDiv255(inv)).Clamp(255)
	b.DB = b.SB.Add(b.DB.MulDiv255(inv)).Clamp(255)
	b.DA = b.SA.Add(b.DA.MulDiv255(inv)).Clamp(255)
}
