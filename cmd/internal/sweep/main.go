package sweep

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/paritytowers/hanoi"
	"github.com/nelhage/paritytowers/logs"
)

type Command struct {
	from    int
	to      int
	threads int

	db  string
	csv string
}

func (*Command) Name() string     { return "sweep" }
func (*Command) Synopsis() string { return "Solve a range of disk counts and tabulate the results" }
func (*Command) Usage() string {
	return `sweep [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.from, "from", 1, "smallest disk count")
	flags.IntVar(&c.to, "to", 16, "largest disk count")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of solves to run at once")
	flags.StringVar(&c.db, "db", "", "sqlite database to record the runs in")
	flags.StringVar(&c.csv, "csv", "", "write results as CSV to this file")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to > 25 {
		log.Printf("sweeping up to %d disks may take long", c.to)
	}
	at := time.Now()
	results, err := Sweep(ctx, c.from, c.to, c.threads)
	if err != nil {
		log.Printf("sweep: %v", err)
		return exitStatus(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "disks\tvariant\tmoves\tus\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", r.Disks, r.Variant(), r.Moves, r.Elapsed.Microseconds())
	}
	tw.Flush()

	if c.csv != "" {
		if err := writeCSV(c.csv, results); err != nil {
			log.Printf("write csv path=%s: %v", c.csv, err)
			return subcommands.ExitFailure
		}
	}
	if c.db != "" {
		if err := record(c.db, results, at); err != nil {
			log.Printf("record runs db=%s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		log.Printf("recorded runs=%d db=%s", len(results), c.db)
	}
	return subcommands.ExitSuccess
}

func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, ErrBadRange) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

func writeCSV(path string, results []hanoi.Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	wr := csv.NewWriter(fh)
	wr.Write([]string{"disks", "moves", "micros"})
	for _, r := range results {
		wr.Write([]string{
			strconv.Itoa(r.Disks),
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Elapsed.Microseconds(), 10),
		})
	}
	wr.Flush()
	if err := wr.Error(); err != nil {
		return err
	}
	return fh.Close()
}

func record(db string, results []hanoi.Result, at time.Time) error {
	repo, err := logs.Open(db)
	if err != nil {
		return err
	}
	defer repo.Close()
	runs := make([]*logs.Run, len(results))
	for i, r := range results {
		runs[i] = logs.RunFromResult(r, at)
	}
	return repo.InsertRuns(runs)
}
