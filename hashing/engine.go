package hashing

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hashable is implemented by values that can fold their own fields
// into an Engine. The fold order defines the value's hashing identity.
type Hashable interface {
	HashInto(e *Engine)
}

// Engine is a deterministic 64-bit fold accumulator over field bytes.
// The same logical value produces the same digest across calls and
// across process runs, and the fold is order-sensitive. This is a
// checksum for chain linkage, not a cryptographic hash; it makes no
// collision-resistance claim.
type Engine struct {
	h hash.Hash64
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{h: fnv.New64a()}
}

// WriteString folds the raw bytes of s followed by a 0xff terminator,
// so adjacent string fields keep their boundaries.
func (e *Engine) WriteString(s string) {
	e.h.Write([]byte(s))
	e.h.Write([]byte{0xff})
}

// WriteUint64 folds v as 8 little-endian bytes.
func (e *Engine) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.h.Write(b[:])
}

// Sum64 returns the digest accumulated so far.
func (e *Engine) Sum64() uint64 {
	return e.h.Sum64()
}

// Sum hashes a single value with a fresh engine.
func Sum(h Hashable) uint64 {
	e := New()
	h.HashInto(e)
	return e.Sum64()
}

// SplitAmount decomposes a monetary amount into whole dollars and
// cents so that amounts fold as integers instead of raw float bits.
// The decomposition truncates: sub-cent precision is dropped, and a
// cent part that is not exactly representable in binary can truncate
// one below the printed value (10.01 splits as 10 dollars, 0 cents;
// 19.99 as 19 dollars, 98 cents). Hash equality is defined over the
// truncated pair.
func SplitAmount(amount float64) (dollars, cents uint64) {
	d := int64(amount)
	c := int64((amount - float64(d)) * 100)
	return uint64(d), uint64(c)
}
