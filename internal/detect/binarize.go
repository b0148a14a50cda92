package detect

// binarize converts a row-major RGBA pixel buffer into a flat foreground
// mask using ITU-R BT.709 luminance weights.
//
// A pixel is foreground iff its luminance is below the threshold; near-white
// pixels are background. The alpha channel is ignored. The buffer must hold
// at least width*height*4 bytes; the caller validates the length.
func binarize(pix []uint8, width, height int, threshold float64) []bool {
	mask := make([]bool, width*height)
	for i := 0; i < width*height; i++ {
		r := float64(pix[i*4])
		g := float64(pix[i*4+1])
		b := float64(pix[i*4+2])
		luminance := 0.2126*r + 0.7152*g + 0.0722*b
		mask[i] = luminance < threshold
	}
	return mask
}
