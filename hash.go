package bloom

import (
	"iter"
	"math/big"

	"github.com/spaolacci/murmur3"
)

// hashHalves computes the 128-bit murmur3 digest of data (zero seed) and
// returns its low and high 64-bit lanes. Every implementation that should
// agree on filter contents must use this exact hash and seed.
func hashHalves(data []byte) (lo, hi uint64) {
	return murmur3.Sum128(data)
}

// probes returns the sequence of k bit positions in [0, m) for data.
//
// The low digest lane seeds an accumulator; probe i adds the high lane
// scaled by i to the accumulator, then reduces it modulo m. The accumulator
// carries across probes, so position i depends on the running sum
// lo + hi*(0+1+...+i), and it is arbitrary precision so the sum never wraps.
//
// The sequence is finite, lazy, and restartable: ranging over the returned
// value again replays the same positions from the start.
func probes(data []byte, m, k uint) iter.Seq[uint] {
	lo, hi := hashHalves(data)
	return func(yield func(uint) bool) {
		var (
			acc  = new(big.Int).SetUint64(lo)
			step = new(big.Int).SetUint64(hi)
			mod  = new(big.Int).SetUint64(uint64(m))
			tmp  = new(big.Int)
		)
		for i := uint(0); i < k; i++ {
			tmp.SetUint64(uint64(i))
			acc.Add(acc, tmp.Mul(tmp, step))
			if !yield(uint(tmp.Mod(acc, mod).Uint64())) {
				return
			}
		}
	}
}
