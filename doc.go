// Package bloom provides a capacity-gated bloom filter with optional
// duplicate detection.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Design
//
// Each item is hashed once with 128-bit murmur3. The two 64-bit halves of
// the digest seed a cumulative variant of enhanced double hashing: an
// accumulator starts at the low half, and for probe i the high half scaled
// by i is added to it before reducing modulo the bit-array length. The
// accumulator is arbitrary precision, so probe positions are exact for any
// probe count. One hash computation therefore yields all k bit positions.
//
// Unlike most bloom filter libraries, a [Filter] knows the element capacity
// it was sized for and refuses further insertions once it is reached. Past
// capacity the configured false positive rate no longer holds, so [Filter.Add]
// returns [ErrCapacityExceeded] instead of silently degrading. A full filter
// keeps answering [Filter.Contains] queries indefinitely.
//
// # Duplicate Detection
//
// With duplicate checking enabled at construction, Add reports whether the
// item was probably present already: if every probed bit was set before the
// insertion, the item is classified as a duplicate and the element count is
// not incremented. This inherits the filter's false positive behavior – a
// never-inserted item whose positions all collide with earlier insertions
// is misreported as a duplicate at roughly the configured error rate.
//
// # Choosing Parameters
//
// Use [New] with the expected number of items and the target false positive
// rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := bloom.New(1_000_000, 0.01, false)
//
// The bit-array length and number of probes are derived with the standard
// optimal sizing formulas; see [OptimalBitCount] and [OptimalHashCount].
// When the filter is filled to capacity it achieves approximately the target
// false positive rate. Use [Filter.EstimatedFalsePositiveRate] to monitor
// the current rate as items are added.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Insertions require exclusive access to the
// filter; concurrent readers are safe only in the absence of writers. Callers
// that share a filter across goroutines must serialize access externally.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Bloom, Space/time trade-offs in hash coding with allowable errors (CACM 1970)
package bloom
