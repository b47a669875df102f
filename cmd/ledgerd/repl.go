package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rmarchant/ledger_in_go/commands"
	"github.com/rmarchant/ledger_in_go/ledger"
	"github.com/rmarchant/ledger_in_go/model"
)

// errQuit unwinds the shell goroutines on an explicit quit.
var errQuit = errors.New("quit")

// runShell creates the ledger and runs two goroutines for its shell:
// one reads stdin into commands, the other applies them. A sealing
// attempt gets its own goroutine with a cancel so the shell stays
// responsive while the proof search runs.
func runShell(cmd *cobra.Command, args []string) error {
	cfg := loadAppConfig()
	led := ledger.New(cfg)
	slog.Info("Ledger created", "uuid", led.ID(), "difficulty", cfg.DIFFICULTY)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCh := make(chan commands.Command)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readCommands(ctx, cmdCh) })
	g.Go(func() error { return handleCommands(ctx, led, cmdCh) })

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// readCommands turns stdin lines into commands. It returns after a
// quit command, on stdin EOF, or when ctx is canceled.
func readCommands(ctx context.Context, out chan<- commands.Command) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Print("> ")
			continue
		}
		c, err := commands.CreateCommand(line)
		if err != nil {
			slog.Error("Bad command", "error", err)
			fmt.Print("> ")
			continue
		}
		select {
		case out <- c:
		case <-ctx.Done():
			return ctx.Err()
		}
		if c.Op == commands.QUIT {
			return nil
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	// stdin closed, tell the handler to wind down.
	select {
	case out <- commands.Command{Op: commands.QUIT}:
	case <-ctx.Done():
	}
	return nil
}

type sealOutcome struct {
	block *model.Block
	err   error
}

// handleCommands applies shell commands to the ledger and owns the
// single in-flight sealing attempt.
func handleCommands(ctx context.Context, led *ledger.Ledger, in <-chan commands.Command) error {
	sealDone := make(chan sealOutcome, 1)
	var sealCancel context.CancelFunc
	sealing := false
	defer func() {
		if sealCancel != nil {
			sealCancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-sealDone:
			sealing = false
			if res.err != nil {
				slog.Error("Sealing failed", "error", res.err)
			} else {
				slog.Info("Block sealed", "size", led.Size(), "block", res.block.Display())
			}
		case c := <-in:
			switch c.Op {
			case commands.TX:
				tx := model.NewTransaction(c.Args[0], c.Args[1], c.Amount())
				led.AddTransaction(tx)
				slog.Info("Transaction queued", "tx", tx.Display(), "pending", len(led.Pending()))
			case commands.SEAL:
				if sealing {
					slog.Warn("A sealing attempt is already running")
					continue
				}
				sealing = true
				sealCtx, cancel := context.WithCancel(ctx)
				sealCancel = cancel
				slog.Info("Sealing started", "pending", len(led.Pending()))
				go func() {
					block, err := led.AddBlock(sealCtx)
					sealDone <- sealOutcome{block: block, err: err}
				}()
			case commands.STOP:
				if !sealing {
					slog.Warn("No sealing attempt to stop")
					continue
				}
				sealCancel()
			case commands.SHOW:
				showChain(led)
			case commands.SIZE:
				pterm.Printfln("%d block(s)", led.Size())
			case commands.PENDING:
				showPending(led)
			case commands.QUIT:
				return errQuit
			default:
				slog.Warn("Unrecognized command", "op", int(c.Op))
			}
		}
	}
}

func showChain(led *ledger.Ledger) {
	blocks := led.Blocks()
	if len(blocks) == 0 {
		pterm.Println("The chain is empty.")
		return
	}
	data := pterm.TableData{{"Height", "Hash", "Last Hash", "Nonce", "Txs"}}
	for i, b := range blocks {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.FormatUint(b.Hash, 10),
			strconv.FormatUint(b.LastHash, 10),
			strconv.FormatUint(b.Proof.Nonce, 10),
			strconv.Itoa(len(b.Transactions)),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		slog.Error("Failed to render chain", "error", err)
	}
}

func showPending(led *ledger.Ledger) {
	pending := led.Pending()
	if len(pending) == 0 {
		pterm.Println("No pending transactions.")
		return
	}
	for _, tx := range pending {
		pterm.Println(tx.Display())
	}
}
