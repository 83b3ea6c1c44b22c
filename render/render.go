package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/paritytowers/hanoi"
)

var Labels = [3]string{"A", "B", "C"}

// Pegs writes one line per peg, listing its disks from the bottom up,
// followed by a blank line.
func Pegs(out io.Writer, p *hanoi.Position) {
	var buf strings.Builder
	for i, l := range Labels {
		buf.WriteString(l)
		buf.WriteString(": ")
		for _, d := range p.Peg(i) {
			fmt.Fprintf(&buf, " %d", d)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
	io.WriteString(out, buf.String())
}

// Dumper returns a hanoi.Config.Dump hook writing to out.
func Dumper(out io.Writer) func(*hanoi.Position) {
	return func(p *hanoi.Position) {
		Pegs(out, p)
	}
}

func Summary(out io.Writer, r hanoi.Result) {
	fmt.Fprintf(out, "%d disks done in %d moves\n", r.Disks, r.Moves)
	fmt.Fprintf(out, "It took %d us\n", r.Elapsed.Microseconds())
}
