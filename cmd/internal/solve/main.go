package solve

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/paritytowers/hanoi"
	"github.com/nelhage/paritytowers/logs"
	"github.com/nelhage/paritytowers/render"
)

type Command struct {
	debug bool
	check bool
	db    string

	out io.Writer
}

func (*Command) Name() string     { return "solve" }
func (*Command) Synopsis() string { return "Move a tower of disks under the parity rule" }
func (*Command) Usage() string {
	return `solve [flags] [DISKS]

Move DISKS disks (default 3) from the first peg to the last. A disk may
only be placed on an empty peg, or on a larger disk of opposite parity.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.debug, "debug", false, "dump the pegs at every step")
	flags.BoolVar(&c.check, "check", false, "verify peg invariants after every move")
	flags.StringVar(&c.db, "db", "", "sqlite database to record the run in")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == nil {
		c.out = os.Stdout
	}
	disks, err := DiskCount(flag.Args(), c.out)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	cfg := hanoi.Config{Disks: disks}
	if c.debug {
		cfg.Dump = render.Dumper(c.out)
	}
	var checker *hanoi.Checker
	if c.check {
		checker = &hanoi.Checker{}
		cfg.OnTransfer = checker.OnTransfer
	}

	at := time.Now()
	r := hanoi.Solve(cfg)
	render.Summary(c.out, r)
	return c.finish(r, checker, at)
}

// finish reports invariant failures and records the run.
func (c *Command) finish(r hanoi.Result, checker *hanoi.Checker, at time.Time) subcommands.ExitStatus {
	if checker != nil && checker.Err != nil {
		log.Printf("invariant violated: %v", checker.Err)
		return subcommands.ExitFailure
	}

	if c.db != "" {
		if err := record(c.db, logs.RunFromResult(r, at)); err != nil {
			log.Printf("record run db=%s: %v", c.db, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func record(db string, run *logs.Run) error {
	repo, err := logs.Open(db)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer repo.Close()
	return repo.InsertRun(run)
}
