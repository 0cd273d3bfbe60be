package wavelet

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestConcurrentDistinctBuffers(t *testing.T) {
	const workers = 8
	x := testutil.DeterministicNoise[float32](77, 1, 256)

	want := make([][]float32, MaxFilter+1)
	for id := Daub4; id <= MaxFilter; id++ {
		want[id] = testutil.Clone(x)
		Forward(want[id], len(x), MustCoefficients(id))
	}

	var wg sync.WaitGroup
	results := make([][]float32, workers)
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := Filter(w % int(MaxFilter+1))
			p, err := Coefficients(id)
			if err != nil {
				t.Error(err)
				return
			}
			buf := testutil.Clone(x)
			Forward(buf, len(buf), p)
			results[w] = buf
		}()
	}
	wg.Wait()

	for w, got := range results {
		testutil.RequireSliceNearlyEqual(t, got, want[w%int(MaxFilter+1)], 0)
	}
}
