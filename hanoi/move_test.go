package hanoi

import (
	"reflect"
	"testing"
)

func position(pegs [3][]Disk) *Position {
	n := 0
	for _, pg := range pegs {
		n += len(pg)
	}
	p := New(Config{Disks: n})
	for i, pg := range pegs {
		// pegs are written top first
		p.pegs[i] = nil
		for j := len(pg) - 1; j >= 0; j-- {
			p.pegs[i].push(pg[j])
		}
	}
	return p
}

func TestNew(t *testing.T) {
	p := New(Config{Disks: 4})
	if got := p.Peg(Source).Disks(); !reflect.DeepEqual(got, []Disk{1, 2, 3, 4}) {
		t.Errorf("source=%v", got)
	}
	if !p.Peg(Auxiliary).Empty() || !p.Peg(Destination).Empty() {
		t.Errorf("aux=%v dest=%v", p.Peg(Auxiliary), p.Peg(Destination))
	}
	if p.Previous() != Destination || p.Moves() != 0 || p.Done() {
		t.Errorf("previous=%d moves=%d done=%v", p.Previous(), p.Moves(), p.Done())
	}
}

func TestMove(t *testing.T) {
	cases := []struct {
		pegs     [3][]Disk
		from, to int
		ok       bool
		after    [3][]Disk
	}{
		{
			[3][]Disk{{1, 2}, nil, nil},
			Source, Destination, true,
			[3][]Disk{{2}, nil, {1}},
		},
		{
			[3][]Disk{{2}, nil, {1}},
			Auxiliary, Source, false,
			[3][]Disk{{2}, nil, {1}},
		},
		{
			// odd on odd
			[3][]Disk{{1, 2}, {3}, nil},
			Source, Auxiliary, false,
			[3][]Disk{{1, 2}, {3}, nil},
		},
		{
			// even on even
			[3][]Disk{{2}, {4}, {1, 3}},
			Source, Auxiliary, false,
			[3][]Disk{{2}, {4}, {1, 3}},
		},
		{
			// opposite parity but larger
			[3][]Disk{{2}, {1}, {3}},
			Source, Auxiliary, false,
			[3][]Disk{{2}, {1}, {3}},
		},
		{
			[3][]Disk{{2}, {1}, {3}},
			Source, Destination, true,
			[3][]Disk{nil, {1}, {2, 3}},
		},
		{
			[3][]Disk{{4}, {1, 2}, {3}},
			Auxiliary, Source, true,
			[3][]Disk{{1, 4}, {2}, {3}},
		},
	}
	for i, tc := range cases {
		p := position(tc.pegs)
		if got := p.Move(tc.from, tc.to); got != tc.ok {
			t.Errorf("[%d] Move(%d, %d)=%v not %v", i, tc.from, tc.to, got, tc.ok)
		}
		want := position(tc.after)
		for j := 0; j < 3; j++ {
			if !reflect.DeepEqual(p.Peg(j).Disks(), want.Peg(j).Disks()) {
				t.Errorf("[%d] peg %d=%v not %v", i, j, p.Peg(j).Disks(), want.Peg(j).Disks())
			}
		}
		if p.Moves() != 0 || p.Previous() != Destination {
			t.Errorf("[%d] Move touched counters: moves=%d previous=%d", i, p.Moves(), p.Previous())
		}
	}
}

func TestMoveBadPeg(t *testing.T) {
	for _, mv := range [][2]int{{0, 0}, {-1, 2}, {1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Move(%d, %d) did not panic", mv[0], mv[1])
				}
			}()
			New(Config{Disks: 2}).Move(mv[0], mv[1])
		}()
	}
}

func TestMoveExhaustive(t *testing.T) {
	// every legal-looking pair of distinct tops
	for a := Disk(1); a <= 6; a++ {
		for b := Disk(1); b <= 6; b++ {
			if a == b {
				continue
			}
			p := position([3][]Disk{{a}, {b}, nil})
			ok := p.Move(Source, Auxiliary)
			want := a.Odd() != b.Odd() && a < b
			if ok != want {
				t.Errorf("Move(%d onto %d)=%v not %v", a, b, ok, want)
			}
		}
	}
}

func TestPeg(t *testing.T) {
	var pg Peg
	if _, ok := pg.Top(); ok || !pg.Empty() {
		t.Fatal("empty peg has a top")
	}
	pg.push(3)
	pg.push(2)
	if d, ok := pg.Top(); !ok || d != 2 {
		t.Errorf("Top()=%d,%v", d, ok)
	}
	if got := pg.Disks(); !reflect.DeepEqual(got, []Disk{2, 3}) {
		t.Errorf("Disks()=%v", got)
	}
	if d := pg.pop(); d != 2 || pg.Len() != 1 {
		t.Errorf("pop()=%d len=%d", d, pg.Len())
	}
}

func TestTransfer(t *testing.T) {
	var seen []Transfer
	p := New(Config{
		Disks:      3,
		OnTransfer: func(_ *Position, tr Transfer) { seen = append(seen, tr) },
	})
	if !p.transfer(Source, Auxiliary) {
		t.Fatal("transfer(A, B) refused")
	}
	if p.Moves() != 1 || p.Previous() != Auxiliary {
		t.Errorf("moves=%d previous=%d", p.Moves(), p.Previous())
	}
	// 2 onto 1 is illegal; nothing changes
	if p.transfer(Source, Auxiliary) {
		t.Error("transfer(A, B) of 2 onto 1 accepted")
	}
	if p.Moves() != 1 || p.Previous() != Auxiliary || len(seen) != 1 {
		t.Errorf("failed transfer changed state: moves=%d previous=%d seen=%v",
			p.Moves(), p.Previous(), seen)
	}
	if !reflect.DeepEqual(seen, []Transfer{{Source, Auxiliary, 1}}) {
		t.Errorf("seen=%v", seen)
	}
}
