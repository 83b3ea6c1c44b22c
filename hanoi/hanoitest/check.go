package hanoitest

import (
	"github.com/nelhage/paritytowers/hanoi"
)

// Solve builds a position with a hanoi.Checker attached and solves it.
func Solve(disks int) (*hanoi.Position, *hanoi.Checker) {
	c := &hanoi.Checker{}
	p := hanoi.New(hanoi.Config{Disks: disks, OnTransfer: c.OnTransfer})
	p.Solve()
	return p, c
}
