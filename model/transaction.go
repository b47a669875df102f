package model

import (
	"fmt"

	"github.com/rmarchant/ledger_in_go/hashing"
)

// Displayable is implemented by values with a stable human-readable
// summary. The output is for people, not parsers, and never feeds
// into hashing.
type Displayable interface {
	Display() string
}

// Transaction is a single transfer record. Immutable after
// construction.
type Transaction struct {
	// Recipient identifier.
	To string
	// Sender identifier.
	From string
	// Amount to transfer. Only whole dollars and cents take part in
	// hashing; anything beyond the hundredths place is ignored there.
	Amount float64
}

// NewTransaction creates a transaction. There is no business
// validation here: addresses are opaque strings and negative or zero
// amounts are accepted as given.
func NewTransaction(to, from string, amount float64) Transaction {
	return Transaction{
		To:     to,
		From:   from,
		Amount: amount,
	}
}

// HashInto folds to, from, dollars and cents, in that order.
func (t Transaction) HashInto(e *hashing.Engine) {
	dollars, cents := hashing.SplitAmount(t.Amount)
	e.WriteString(t.To)
	e.WriteString(t.From)
	e.WriteUint64(dollars)
	e.WriteUint64(cents)
}

// Hash returns the transaction's digest.
func (t Transaction) Hash() uint64 {
	return hashing.Sum(t)
}

// Display returns a one-line summary of the transaction.
func (t Transaction) Display() string {
	return fmt.Sprintf("to: %s, from: %s, amount: %v", t.To, t.From, t.Amount)
}
