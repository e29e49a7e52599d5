package bloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrInvalidCapacity is returned by New when capacity is zero.
	ErrInvalidCapacity = errors.New("bloom: capacity must be greater than zero")

	// ErrInvalidErrorRate is returned by New when the error rate is outside (0, 1].
	ErrInvalidErrorRate = errors.New("bloom: error rate must be in (0, 1]")

	// ErrCapacityExceeded is returned by Add when the filter already holds
	// as many elements as it was sized for. The filter is left unchanged.
	ErrCapacityExceeded = errors.New("bloom: filter is at capacity")
)

// Filter is a bloom filter sized for a fixed element capacity and target
// false positive rate. The bit-array length and probe count are derived once
// at construction and never change; bits only ever transition from unset to
// set. Filter is not safe for concurrent use.
type Filter struct {
	bits      *bitset.BitSet // membership summary, length numBits
	capacity  uint           // maximum distinct elements the filter is sized for
	errorRate float64        // target false positive rate at full capacity
	numBits   uint           // bit-array length (m)
	numHashes uint           // probes per operation (k)
	numElems  uint           // elements accepted so far
	dupCheck  bool           // classify re-insertions as duplicates
}

// New creates a filter sized for capacity elements at the given target false
// positive rate. With dupCheck enabled, Add distinguishes items that were
// probably present already from newly counted ones.
//
// Returns ErrInvalidCapacity if capacity is zero and ErrInvalidErrorRate if
// errorRate is outside (0, 1].
func New(capacity uint, errorRate float64, dupCheck bool) (*Filter, error) {
	if capacity == 0 {
		return nil, ErrInvalidCapacity
	}
	if errorRate <= 0.0 || errorRate > 1.0 {
		return nil, ErrInvalidErrorRate
	}

	m := OptimalBitCount(capacity, errorRate)
	k := OptimalHashCount(m, capacity)

	// errorRate = 1 degenerates to m = 0, k = 0. Both must stay positive
	// for index derivation to be defined.
	m = max(m, 1)
	k = max(k, 1)

	return &Filter{
		bits:      bitset.New(m),
		capacity:  capacity,
		errorRate: errorRate,
		numBits:   m,
		numHashes: k,
		dupCheck:  dupCheck,
	}, nil
}

// Add inserts data into the filter.
//
// It returns ErrCapacityExceeded, without mutating the filter, once Len has
// reached Capacity. Otherwise it sets the probed bits and reports whether the
// item was newly counted: without duplicate checking the result is always
// true; with duplicate checking it is false when every probed bit was set
// before the insertion, in which case the element count is not incremented.
// A false result can occur for an item never inserted when all its positions
// collide with earlier insertions; that misclassification happens at roughly
// the configured error rate and is inherent to the structure.
func (f *Filter) Add(data []byte) (bool, error) {
	if f.numElems == f.capacity {
		return false, ErrCapacityExceeded
	}

	seen := true
	for pos := range probes(data, f.numBits, f.numHashes) {
		if f.dupCheck && !f.bits.Test(pos) {
			seen = false
		}
		f.bits.Set(pos)
	}

	if f.dupCheck && seen {
		return false, nil
	}
	f.numElems++
	return true, nil
}

// AddString inserts a string into the filter.
func (f *Filter) AddString(s string) (bool, error) {
	return f.Add([]byte(s))
}

// Contains reports whether data might be in the filter. A false result is
// definitive; a true result may be a false positive. Contains never mutates
// the filter and keeps working after the filter is full.
func (f *Filter) Contains(data []byte) bool {
	for pos := range probes(data, f.numBits, f.numHashes) {
		if !f.bits.Test(pos) {
			return false
		}
	}
	return true
}

// ContainsString reports whether a string might be in the filter.
func (f *Filter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// Capacity returns the maximum number of elements the filter was sized for.
func (f *Filter) Capacity() uint {
	return f.capacity
}

// Len returns the number of elements accepted so far.
func (f *Filter) Len() uint {
	return f.numElems
}

// ErrorRate returns the target false positive rate the filter was sized for.
func (f *Filter) ErrorRate() float64 {
	return f.errorRate
}

// IsEmpty reports whether no elements have been accepted yet.
func (f *Filter) IsEmpty() bool {
	return f.numElems == 0
}

// BitLen returns the length of the underlying bit array.
func (f *Filter) BitLen() uint {
	return f.numBits
}

// HashCount returns the number of hash probes per operation.
func (f *Filter) HashCount() uint {
	return f.numHashes
}

// FillRatio returns the proportion of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.numBits)
}

// EstimatedFalsePositiveRate estimates the current false positive rate based
// on the number of elements accepted so far. It approaches ErrorRate as the
// filter fills to capacity.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.numBits, f.numHashes, f.numElems)
}
