package wavelet

// ForwardLevel performs a single decomposition level of signal[off:off+n]
// into smooth[0:n/2] and detail[0:n/2]. There is no wrap-around: signal
// must hold Guard(p) valid samples before off and after off+n, for example
// prepared with [Extend]. n must be even.
func ForwardLevel(signal, smooth, detail []float32, off, n int, p Pair) {
	cc, cr := p.CC, p.CR
	taps := len(cc)
	cc0, cr0 := cc[0], cr[0]
	half := n >> 1

	pos := off - ((taps - 1) >> 1)
	for i := 0; i < half; i++ {
		x := signal[pos : pos+taps]
		s := cc0 * x[0]
		d := cr0 * x[0]
		for j := 1; j < taps; j++ {
			s += cc[j] * x[j]
			d += cr[j] * x[j]
		}
		smooth[i] = s
		detail[i] = d
		pos += 2
	}
}

// InverseLevel synthesises signal[0:n] from one level of smooth and detail
// coefficients starting at smooth[off] and detail[off]. Both inputs must
// hold Guard(p) valid samples around the window. n must be even.
//
// Each output sample receives every other tap; the starting tap parity
// alternates from sample to sample.
func InverseLevel(signal, smooth, detail []float32, off, n int, p Pair) {
	cc, cr := p.CC, p.CR
	taps := len(cc)
	centre := (taps - 1) >> 1
	first := centre & 1

	for k := 0; k < n; k++ {
		var acc float32
		for j, i := first, ((k-first+centre)>>1)+off; j < taps; j, i = j+2, i-1 {
			acc += cc[j]*smooth[i] + cr[j]*detail[i]
		}
		signal[k] = acc
		first = 1 - first
	}
}

// Guard returns the number of guard samples ForwardLevel and InverseLevel
// need on each side of their window for the pair p.
func Guard(p Pair) int {
	return len(p.CC)
}
