package pow

import (
	"context"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rmarchant/ledger_in_go/hashing"
)

// DefaultDifficulty is how many trailing decimal zeros a digest needs
// to count as a valid proof.
const DefaultDifficulty = 6

// How many nonces to try between cancellation checks.
const checkEvery = 1 << 12

// ErrNonceExhausted means the entire 64-bit nonce range was searched
// without finding a valid digest. The sealing attempt that hit it is
// dead; there is no internal retry.
var ErrNonceExhausted = errors.New("nonce space exhausted without a valid proof")

// Proof is the outcome of a successful search: the winning nonce and
// the digest it produced for the anchor.
type Proof struct {
	Nonce  uint64
	Digest uint64
}

// IsValidDigest reports whether the base-10 rendering of digest ends
// in difficulty '0' characters. A rendering with fewer digits than
// difficulty only has to be all zeros, which in practice only digest
// value 0 satisfies, so difficulty collapses near zero. That asymmetry
// is part of the predicate and is kept as is.
func IsValidDigest(digest uint64, difficulty int) bool {
	s := strconv.FormatUint(digest, 10)
	if difficulty < len(s) {
		s = s[len(s)-difficulty:]
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// Digest computes the candidate digest for an anchor and a nonce: the
// engine hash of the anchor's decimal string concatenated with the
// nonce's decimal string. Verifying a found proof is a single call.
func Digest(anchor, nonce uint64) uint64 {
	e := hashing.New()
	e.WriteString(strconv.FormatUint(anchor, 10) + strconv.FormatUint(nonce, 10))
	return e.Sum64()
}

// Search brute-forces the smallest nonce whose candidate digest
// satisfies IsValidDigest for the given anchor. The expected iteration
// count is a non-uniform function of the decimal predicate, so latency
// is unbounded; ctx is checked periodically and cancels the search.
// Running out of nonces returns ErrNonceExhausted.
func Search(ctx context.Context, anchor uint64, difficulty int) (Proof, error) {
	for nonce := uint64(0); ; nonce++ {
		if nonce%checkEvery == 0 {
			select {
			case <-ctx.Done():
				return Proof{}, errors.Wrap(ctx.Err(), "proof search canceled")
			default:
			}
		}
		if digest := Digest(anchor, nonce); IsValidDigest(digest, difficulty) {
			return Proof{Nonce: nonce, Digest: digest}, nil
		}
		if nonce == math.MaxUint64 {
			return Proof{}, ErrNonceExhausted
		}
	}
}
