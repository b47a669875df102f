package commands

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Operation int

const (
	DEFAULT = iota
	// Submit a transaction to the pending queue.
	TX
	// Seal the pending queue into a new block; the proof search runs
	// until it succeeds or an explicit stop.
	SEAL
	// Cancel an in-flight sealing attempt.
	STOP
	// Show the blockchain.
	SHOW
	// Show the number of accepted blocks.
	SIZE
	// Show the pending transaction queue.
	PENDING
	// Leave the shell.
	QUIT
)

// A command contains an operation and its arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case SEAL, STOP, SHOW, SIZE, PENDING, QUIT:
		return len(c.Args) == 0
	case TX:
		if len(c.Args) != 3 {
			return false
		}
		if c.Args[0] == "" || c.Args[1] == "" {
			return false
		}
		// Amount must be a number. Its sign is not checked on purpose.
		_, err := strconv.ParseFloat(c.Args[2], 64)
		return err == nil
	default:
		return false
	}
}

// CreateCommand parses a shell input line into a command.
func CreateCommand(s string) (Command, error) {
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "tx":
		cmd.Op = TX
	case "seal":
		cmd.Op = SEAL
	case "stop":
		cmd.Op = STOP
	case "show":
		cmd.Op = SHOW
	case "size":
		cmd.Op = SIZE
	case "pending":
		cmd.Op = PENDING
	case "quit":
		cmd.Op = QUIT
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.Errorf("invalid command: %q", s)
	}
	return cmd, nil
}

// NewDefaultCommand creates a command with the default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}

// Amount returns the parsed amount of a valid TX command.
func (c Command) Amount() float64 {
	f, _ := strconv.ParseFloat(c.Args[2], 64)
	return f
}
