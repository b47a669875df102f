package model

import (
	"context"
	"fmt"

	"github.com/rmarchant/ledger_in_go/hashing"
	"github.com/rmarchant/ledger_in_go/pow"
)

// GenesisHash is the linkage digest used in place of a previous block
// for the first block in the chain.
const GenesisHash uint64 = 0

// Block is an ordered batch of transactions sealed against the
// previous block in the chain.
type Block struct {
	// Transactions in this block, in submission order.
	Transactions []Transaction
	// Digest of the transaction sequence only, computed once at
	// construction and never recomputed. LastHash and Proof are
	// deliberately not part of it, so two blocks carrying the same
	// transactions have the same Hash wherever they sit in the chain.
	Hash uint64
	// Digest of the previous block, or GenesisHash for the first one.
	LastHash uint64
	// Proof of work found for LastHash.
	Proof pow.Proof
}

// NewBlock seals txs against lastHash. The proof-of-work search runs
// first and has no upper bound on latency; cancel ctx to abandon the
// attempt. There is no partially constructed block: either the search
// succeeds and the block comes back whole, or the error does.
func NewBlock(ctx context.Context, txs []Transaction, lastHash uint64, difficulty int) (*Block, error) {
	proof, err := pow.Search(ctx, lastHash, difficulty)
	if err != nil {
		return nil, err
	}

	b := &Block{
		Transactions: txs,
		LastHash:     lastHash,
		Proof:        proof,
	}
	b.Hash = hashing.Sum(b)
	return b, nil
}

// HashInto folds every transaction's fields, in order. The block's
// linkage fields stay out of its digest.
func (b *Block) HashInto(e *hashing.Engine) {
	for _, tx := range b.Transactions {
		tx.HashInto(e)
	}
}

// Display returns a one-line summary of the block.
func (b *Block) Display() string {
	return fmt.Sprintf("Hash: %d, Last Hash: %d, proof: %d (nonce %d), transactions size: %d",
		b.Hash, b.LastHash, b.Proof.Digest, b.Proof.Nonce, len(b.Transactions))
}
