package blend

// SourceOver composites a premultiplied source over a premultiplied
// destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// SourceOverSpan composites one premultiplied color over every pixel of
// an RGBA span (4 bytes per pixel).
func SourceOverSpan(dst []byte, sr, sg, sb, sa byte) {
	if sa == 255 {
		for i := 0; i+3 < len(dst); i += 4 {
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = sr, sg, sb, sa
		}
		return
	}
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
			sr, sg, sb, sa, dst[i+0], dst[i+1], dst[i+2], dst[i+3])
	}
}

// Scale multiplies every channel of a premultiplied span by alpha/255.
// This applies a uniform opacity to already-composited pixels.
func Scale(dst []byte, alpha byte) {
	if alpha == 255 {
		return
	}
	for i := range dst {
		dst[i] = mulDiv255(dst[i], alpha)
	}
}
