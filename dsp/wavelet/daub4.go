package wavelet

// Forward4 replaces buf[0:n] by its Daubechies-4 wavelet transform. It is
// an unrolled equivalent of Forward with the Daub4 pair and produces the
// same layout.
//
// n must be a power of two >= 4. This is not checked.
func Forward4(buf []float32, n int) {
	scratch := getScratch(n >> 1)
	tmp := scratch.data

	for h := n; h >= 4; h >>= 1 {
		half := h >> 1
		last := half - 1

		// The first pair reaches back to buf[h-1] and the last pair forward
		// to buf[0], which is overwritten by then.
		aw := buf[h-1]
		a0 := buf[0]

		buf[0] = daub4C0*aw + daub4C1*a0 + daub4C2*buf[1] + daub4C3*buf[2]
		tmp[0] = daub4C3*aw - daub4C2*a0 + daub4C1*buf[1] - daub4C0*buf[2]

		for j, k := 1, 1; j < last; j, k = j+1, k+2 {
			tmp[j] = daub4C3*buf[k] - daub4C2*buf[k+1] + daub4C1*buf[k+2] - daub4C0*buf[k+3]
			buf[j] = daub4C0*buf[k] + daub4C1*buf[k+1] + daub4C2*buf[k+2] + daub4C3*buf[k+3]
		}

		tmp[last] = daub4C3*buf[h-3] - daub4C2*buf[h-2] + daub4C1*buf[h-1] - daub4C0*a0
		buf[last] = daub4C0*buf[h-3] + daub4C1*buf[h-2] + daub4C2*buf[h-1] + daub4C3*a0

		copy(buf[half:h], tmp[:half])
	}

	putScratch(scratch)
}

// Inverse4 reverses Forward4 in place.
//
// n must be a power of two >= 4. This is not checked.
func Inverse4(buf []float32, n int) {
	scratch := getScratch(n)
	tmp := scratch.data

	for h := 4; h <= n; h <<= 1 {
		half := h >> 1
		last := half - 1
		s := buf[:half]
		d := buf[half:h]

		for m := 1; m < last; m++ {
			tmp[2*m] = daub4C1*s[m] - daub4C2*d[m] + daub4C3*s[m-1] - daub4C0*d[m-1]
			tmp[2*m+1] = daub4C0*s[m+1] + daub4C3*d[m+1] + daub4C2*s[m] + daub4C1*d[m]
		}

		// wrap around
		tmp[0] = daub4C1*s[0] - daub4C2*d[0] + daub4C3*s[last] - daub4C0*d[last]
		tmp[1] = daub4C0*s[1] + daub4C3*d[1] + daub4C2*s[0] + daub4C1*d[0]
		tmp[h-2] = daub4C1*s[last] - daub4C2*d[last] + daub4C3*s[last-1] - daub4C0*d[last-1]
		tmp[h-1] = daub4C0*s[0] + daub4C3*d[0] + daub4C2*s[last] + daub4C1*d[last]

		copy(buf[:h], tmp[:h])
	}

	putScratch(scratch)
}
