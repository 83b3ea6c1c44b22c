package hanoi

import "fmt"

// Move transfers the top disk of peg `from` onto peg `to`. It reports
// false, leaving the position untouched, if `from` is empty, if both
// tops have the same parity, or if the moving disk is not smaller than
// the one it would cover.
func (p *Position) Move(from, to int) bool {
	if from == to || from < 0 || from > 2 || to < 0 || to > 2 {
		panic(fmt.Sprintf("hanoi: bad move %d->%d", from, to))
	}
	src, ok := p.pegs[from].Top()
	if !ok {
		return false
	}
	if dst, ok := p.pegs[to].Top(); ok {
		if src.Odd() == dst.Odd() {
			return false
		}
		if src >= dst {
			return false
		}
	}
	p.pegs[to].push(p.pegs[from].pop())
	return true
}

// transfer wraps Move with the solver's bookkeeping: count the move,
// remember `to` as the previous peg and notify the observer.
func (p *Position) transfer(from, to int) bool {
	if !p.Move(from, to) {
		return false
	}
	p.moves++
	p.previous = to
	if p.cfg.OnTransfer != nil {
		d, _ := p.pegs[to].Top()
		p.cfg.OnTransfer(p, Transfer{From: from, To: to, Disk: d})
	}
	return true
}
