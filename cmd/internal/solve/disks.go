package solve

import (
	"fmt"
	"io"
	"strconv"
)

const (
	DefaultDisks = 3
	// Solving time doubles with every disk; past this point we warn.
	SlowDisks = 25
)

// DiskCount interprets the command-line disk count. A missing argument
// or a count below one falls back to DefaultDisks; advisory messages go
// to out.
func DiskCount(args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		fmt.Fprintf(out, "No disk count given, using the default of %d disks.\n", DefaultDisks)
		return DefaultDisks, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected one disk count, got %d arguments", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("parse disk count %q: %w", args[0], err)
	}
	if n < 0 {
		n = -n
	}
	if n < 1 {
		fmt.Fprintf(out, "Disk count %d does not sound correct, at least one disk is needed. Using %d disks.\n",
			n, DefaultDisks)
		return DefaultDisks, nil
	}
	if n > SlowDisks {
		fmt.Fprintf(out, "A large number of disks may take long to move. Working on it, be patient...\n")
	}
	return n, nil
}
