package hanoi

import "fmt"

const (
	Source = iota
	Auxiliary
	Destination
)

type Config struct {
	Disks int

	// Dump, if set, is called with the current position at the top of
	// every stepper iteration.
	Dump func(p *Position)
	// OnTransfer, if set, is called after every transfer the solver makes.
	OnTransfer func(p *Position, t Transfer)
}

type Transfer struct {
	From, To int
	Disk     Disk
}

type Position struct {
	cfg *Config

	pegs     [3]Peg
	disks    int
	previous int
	moves    int
}

// New returns the starting position for cfg.Disks disks: everything on
// the source peg, smallest on top.
func New(cfg Config) *Position {
	if cfg.Disks < 1 {
		panic(fmt.Sprintf("hanoi: bad disk count %d", cfg.Disks))
	}
	p := &Position{
		cfg:      &cfg,
		disks:    cfg.Disks,
		previous: Destination,
	}
	src := make(Peg, 0, cfg.Disks)
	for d := cfg.Disks; d >= 1; d-- {
		src = append(src, Disk(d))
	}
	p.pegs[Source] = src
	return p
}

func (p *Position) Peg(i int) Peg {
	return p.pegs[i]
}

func (p *Position) Disks() int {
	return p.disks
}

// Previous is the index of the peg last touched by a transfer, as
// either source or destination.
func (p *Position) Previous() int {
	return p.previous
}

func (p *Position) Moves() int {
	return p.moves
}

func (p *Position) Done() bool {
	return p.pegs[Destination].Len() == p.disks
}
