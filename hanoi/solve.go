package hanoi

import "time"

type Variant int

const (
	Even Variant = iota
	Odd
)

func (v Variant) String() string {
	if v == Odd {
		return "odd"
	}
	return "even"
}

// VariantFor picks the stepper used for a whole solve of n disks.
func VariantFor(n int) Variant {
	if n&1 != 0 {
		return Odd
	}
	return Even
}

type candidate struct {
	from, to int
}

// Candidate transfers in priority order. A candidate is skipped if its
// source peg is the previous peg; after a transfer the destination
// becomes the previous peg. previous does not record whether the peg
// was last a source or a destination; move counts depend on that.
var (
	evenOrder = []candidate{
		{Source, Auxiliary},
		{Source, Destination},
		{Auxiliary, Destination},
	}
	oddOrder = []candidate{
		{Source, Destination},
		{Source, Auxiliary},
		{Auxiliary, Destination},
	}
	fallbackOrder = []candidate{
		{Destination, Source},
		{Destination, Auxiliary},
		{Auxiliary, Source},
	}
)

func (v Variant) order() []candidate {
	if v == Odd {
		return oddOrder
	}
	return evenOrder
}

// try makes the first permitted transfer in order, if any.
func (p *Position) try(order []candidate) bool {
	for _, c := range order {
		if p.previous != c.from && p.transfer(c.from, c.to) {
			return true
		}
	}
	return false
}

// step greedily repeats transfers from order, restarting at the top of
// the list after every success, until none applies.
func (p *Position) step(order []candidate) {
	for {
		if p.cfg.Dump != nil {
			p.cfg.Dump(p)
		}
		if !p.try(order) {
			return
		}
	}
}

// Solve runs the solver from the current position until every disk is
// on the destination peg.
func (p *Position) Solve() {
	order := VariantFor(p.disks).order()
	for !p.Done() {
		p.step(order)
		p.try(fallbackOrder)
	}
}

type Result struct {
	Disks   int
	Moves   int
	Elapsed time.Duration
}

func (r Result) Variant() Variant {
	return VariantFor(r.Disks)
}

// Solve solves a fresh puzzle of cfg.Disks disks and reports the move
// count and the wall-clock time spent.
func Solve(cfg Config) Result {
	p := New(cfg)
	start := time.Now()
	p.Solve()
	return Result{
		Disks:   p.disks,
		Moves:   p.moves,
		Elapsed: time.Since(start),
	}
}
