package runner

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

func seededRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Spawn positions are gameplay, not security.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "lane"), seedWord(seed, "spawn")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// uniform returns a value in [lo, hi].
func uniform(r *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
