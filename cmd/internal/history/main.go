package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/nelhage/paritytowers/logs"
)

type Command struct {
	db    string
	disks int
	limit int
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List solves recorded in a run database" }
func (*Command) Usage() string {
	return `history -db RUNS.db [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite run database")
	flags.IntVar(&c.disks, "disks", 0, "only show runs with this many disks")
	flags.IntVar(&c.limit, "limit", 50, "show at most this many runs (0 for all)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply a run database with -db")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Printf("open db=%s: %v", c.db, err)
		return subcommands.ExitFailure
	}
	defer repo.Close()

	runs, err := repo.Runs(c.disks)
	if err != nil {
		log.Printf("%v", err)
		return subcommands.ExitFailure
	}
	if c.limit > 0 && len(runs) > c.limit {
		runs = runs[:c.limit]
	}
	writeRuns(os.Stdout, runs)
	return subcommands.ExitSuccess
}

func writeRuns(out io.Writer, runs []logs.Run) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tdisks\tvariant\tmoves\tus\n")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%d\n",
			r.ID, r.Time.Format("2006-01-02 15:04:05"), r.Disks, r.Variant, r.Moves, r.Micros)
	}
	tw.Flush()
}
