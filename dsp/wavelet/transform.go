package wavelet

import "sync"

// scratchBuf holds pooled workspace for one pyramid pass.
type scratchBuf struct {
	data []float32
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) *scratchBuf {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float32, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Forward replaces buf[0:n] by its wavelet transform using the filter pair
// p (pyramid algorithm, circular boundaries). After the call buf[0:2] holds
// the coarsest smooth coefficients followed by detail bands from coarsest
// to finest, each twice as long as the previous one.
//
// n must be a power of two >= 4. This is not checked.
func Forward(buf []float32, n int, p Pair) {
	scratch := getScratch(n)
	for h := n; h >= 4; h >>= 1 {
		forwardStep(buf, scratch.data, h, p)
	}
	putScratch(scratch)
}

// Inverse replaces the wavelet transform in buf[0:n] by the signal it was
// computed from. It is the exact inverse of [Forward] for an orthogonal pair.
//
// n must be a power of two >= 4. This is not checked.
func Inverse(buf []float32, n int, p Pair) {
	scratch := getScratch(n)
	for h := 4; h <= n; h <<= 1 {
		inverseStep(buf, scratch.data, h, p)
	}
	putScratch(scratch)
}

// forwardStep performs one decomposition level on buf[0:h].
func forwardStep(buf, tmp []float32, h int, p Pair) {
	cc, cr := p.CC, p.CR
	taps := len(cc)
	cc0, cr0 := cc[0], cr[0]
	r := newRing(h)
	half := h >> 1

	off := r.centre(taps)
	for i := 0; i < half; i++ {
		k := r.at(off)
		smooth := cc0 * buf[k]
		detail := cr0 * buf[k]
		for j := 1; j < taps; j++ {
			k = r.at(off + j)
			smooth += cc[j] * buf[k]
			detail += cr[j] * buf[k]
		}
		tmp[i] = smooth
		tmp[i+half] = detail
		off += 2
	}

	copy(buf[:h], tmp[:h])
}

// inverseStep performs one reconstruction level on buf[0:h].
func inverseStep(buf, tmp []float32, h int, p Pair) {
	cc, cr := p.CC, p.CR
	taps := len(cc)
	r := newRing(h)
	half := h >> 1

	out := tmp[:h]
	clear(out)

	off := r.centre(taps)
	for i := 0; i < half; i++ {
		s := buf[i]
		d := buf[i+half]
		for j := 0; j < taps; j++ {
			out[r.at(off+j)] += cc[j]*s + cr[j]*d
		}
		off += 2
	}

	copy(buf[:h], out)
}
