package hanoi

type Disk int

func (d Disk) Odd() bool {
	return d&1 != 0
}

// Peg is a stack of disks. Disks are stored bottom first, so the top
// of the peg is the last element.
type Peg []Disk

func (p Peg) Len() int {
	return len(p)
}

func (p Peg) Empty() bool {
	return len(p) == 0
}

func (p Peg) Top() (Disk, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// Disks returns a copy of the peg's disks, top first.
func (p Peg) Disks() []Disk {
	out := make([]Disk, len(p))
	for i, d := range p {
		out[len(p)-1-i] = d
	}
	return out
}

func (p *Peg) push(d Disk) {
	*p = append(*p, d)
}

func (p *Peg) pop() Disk {
	d := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return d
}
