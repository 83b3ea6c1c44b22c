package hanoi

import "fmt"

// CheckInvariants verifies that every peg is strictly increasing from
// top to bottom, that the pegs together hold each of 1..N exactly once,
// and that the previous peg is a valid index.
func CheckInvariants(p *Position) error {
	seen := make([]bool, p.disks+1)
	total := 0
	for i := range p.pegs {
		ds := p.pegs[i].Disks()
		for j, d := range ds {
			if d < 1 || int(d) > p.disks {
				return fmt.Errorf("peg %d: disk %d out of range", i, d)
			}
			if seen[d] {
				return fmt.Errorf("peg %d: duplicate disk %d", i, d)
			}
			seen[d] = true
			if j > 0 && ds[j-1] >= d {
				return fmt.Errorf("peg %d: disk %d above disk %d", i, ds[j-1], d)
			}
		}
		total += len(ds)
	}
	if total != p.disks {
		return fmt.Errorf("have %d disks, want %d", total, p.disks)
	}
	if p.previous < Source || p.previous > Destination {
		return fmt.Errorf("bad previous peg %d", p.previous)
	}
	return nil
}

// Checker runs CheckInvariants after every transfer and remembers the
// first failure. Use its OnTransfer method as Config.OnTransfer.
type Checker struct {
	Transfers int
	Err       error
}

func (c *Checker) OnTransfer(p *Position, t Transfer) {
	c.Transfers++
	if c.Err != nil {
		return
	}
	if err := CheckInvariants(p); err != nil {
		c.Err = fmt.Errorf("after transfer %d (%d->%d disk %d): %w",
			c.Transfers, t.From, t.To, t.Disk, err)
	}
}
