package pow

import "context"

// Result is what a background search delivers back to its caller.
type Result struct {
	Proof Proof
	Err   error
}

// SearchAsync runs Search on its own goroutine and delivers exactly
// one Result on the returned channel. Cancel ctx to interrupt the
// search; the channel is buffered so an abandoned result does not
// leak the goroutine.
func SearchAsync(ctx context.Context, anchor uint64, difficulty int) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		p, err := Search(ctx, anchor, difficulty)
		out <- Result{Proof: p, Err: err}
	}()
	return out
}
