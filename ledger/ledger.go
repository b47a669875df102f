package ledger

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/rmarchant/ledger_in_go/config"
	"github.com/rmarchant/ledger_in_go/hashing"
	"github.com/rmarchant/ledger_in_go/model"
)

// Ledger owns the chain of accepted blocks and the queue of pending
// transactions. Both collections are exclusively owned: accessors hand
// out copies, never aliases.
//
// It is safe for concurrent use. AddTransaction and the read accessors
// take the state lock; sealing attempts serialize on their own mutex,
// so a long proof search never blocks new submissions.
type Ledger struct {
	// Guards pending, blocks and size.
	m sync.RWMutex
	// Serializes AddBlock calls.
	sealM sync.Mutex

	// Transactions submitted but not yet sealed into a block, FIFO.
	pending []model.Transaction
	// Accepted blocks, append-only.
	blocks []model.Block
	// Count of accepted blocks, always equal to len(blocks).
	size int

	cfg config.AppConfig
	// A unique identifier of this ledger instance. It never takes part
	// in hashing or linkage, only in diagnostics.
	uuid string
}

// New creates an empty ledger.
func New(cfg config.AppConfig) *Ledger {
	myuuid := uuid.NewV4()
	return &Ledger{
		cfg:  cfg,
		uuid: myuuid.String(),
	}
}

// ID returns the diagnostic identifier of this ledger instance.
func (l *Ledger) ID() string {
	return l.uuid
}

// AddTransaction appends tx to the pending queue. It always succeeds
// and has no other effect.
func (l *Ledger) AddTransaction(tx model.Transaction) {
	l.m.Lock()
	defer l.m.Unlock()
	l.pending = append(l.pending, tx)
}

// LastHash resolves the linkage anchor: the digest of the last
// accepted block, or the genesis sentinel while the chain is empty.
// An empty chain is not an error.
func (l *Ledger) LastHash() uint64 {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.lastHashLocked()
}

func (l *Ledger) lastHashLocked() uint64 {
	if len(l.blocks) == 0 {
		return model.GenesisHash
	}
	return hashing.Sum(&l.blocks[len(l.blocks)-1])
}

// AddBlock seals the current pending queue into a new block, appends
// it and returns it. An empty queue is fine: the result is a block
// with no transactions.
//
// The proof-of-work search runs outside the state lock, so
// transactions submitted while it runs stay pending for the next
// block; only the batch snapshotted at seal start is consumed. On
// failure (cancellation, nonce exhaustion) the ledger is left
// untouched and the error goes to the caller; there is no internal
// retry.
func (l *Ledger) AddBlock(ctx context.Context) (*model.Block, error) {
	l.sealM.Lock()
	defer l.sealM.Unlock()

	l.m.RLock()
	anchor := l.lastHashLocked()
	batch := make([]model.Transaction, len(l.pending))
	copy(batch, l.pending)
	l.m.RUnlock()

	block, err := model.NewBlock(ctx, batch, anchor, l.cfg.DIFFICULTY)
	if err != nil {
		return nil, errors.WithMessage(err, "seal block")
	}

	l.m.Lock()
	l.blocks = append(l.blocks, *block)
	l.pending = l.pending[len(batch):]
	l.size++
	l.m.Unlock()

	return block, nil
}

// Size returns the number of accepted blocks.
func (l *Ledger) Size() int {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.size
}

// Blocks returns a deep copy of the accepted block sequence.
func (l *Ledger) Blocks() []model.Block {
	l.m.RLock()
	defer l.m.RUnlock()
	var out []model.Block
	copier.CopyWithOption(&out, &l.blocks, copier.Option{DeepCopy: true})
	return out
}

// Pending returns a deep copy of the pending transaction queue.
func (l *Ledger) Pending() []model.Transaction {
	l.m.RLock()
	defer l.m.RUnlock()
	var out []model.Transaction
	copier.CopyWithOption(&out, &l.pending, copier.Option{DeepCopy: true})
	return out
}
