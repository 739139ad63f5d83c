package hex

import "testing"

func TestNewProgramPadding(t *testing.T) {
	p := NewProgram([]byte("ab"))
	if p.Rings() != 2 {
		t.Fatalf("Rings(): got=%d, want=2", p.Rings())
	}
	if p.Size() != 7 {
		t.Fatalf("Size(): got=%d, want=7", p.Size())
	}
	if p.cells[0].value != 'a' || p.cells[1].value != 'b' {
		t.Fatalf("cells: got=%v", p.cells[:2])
	}
	for i := 2; i < 7; i++ {
		if p.cells[i].value != '.' {
			t.Fatalf("cells[%d]: got=%q, want='.'", i, p.cells[i].value)
		}
	}
}

func TestNewProgramEmpty(t *testing.T) {
	p := NewProgram(nil)
	if p.Rings() != 1 || p.Size() != 1 || p.cells[0].value != '.' {
		t.Fatalf("got rings=%d size=%d cells=%v", p.Rings(), p.Size(), p.cells)
	}
}

func TestNewProgramWhitespace(t *testing.T) {
	p := NewProgram([]byte(" a\tb \n c\r\n"))
	want := "abc"
	for i := 0; i < len(want); i++ {
		if p.cells[i].value != want[i] {
			t.Fatalf("cells[%d]: got=%q, want=%q", i, p.cells[i].value, want[i])
		}
	}
	// Only ASCII whitespace is skipped; NEL and NBSP are cells.
	p = NewProgram([]byte{'a', 0x85, 0xa0})
	for i, w := range []byte{'a', 0x85, 0xa0} {
		if p.cells[i].value != w {
			t.Fatalf("cells[%d]: got=%#x, want=%#x", i, p.cells[i].value, w)
		}
	}
}

func TestNewProgramDebugMarks(t *testing.T) {
	// A backtick marks the next non-space cell, even across whitespace.
	p := NewProgram([]byte("`a b ` \n c"))
	wantDebug := []bool{true, false, true}
	for i, w := range wantDebug {
		if p.cells[i].debug != w {
			t.Fatalf("cells[%d].debug: got=%v, want=%v", i, p.cells[i].debug, w)
		}
	}
	if !p.hasBreakpoints() {
		t.Fatal("hasBreakpoints(): got=false, want=true")
	}
	if NewProgram([]byte("abc")).hasBreakpoints() {
		t.Fatal("hasBreakpoints(): got=true, want=false")
	}
}

func TestNewProgramRingGrowth(t *testing.T) {
	cases := []struct{ cells, rings int }{
		{1, 1},
		{2, 2},
		{7, 2},
		{8, 3},
		{19, 3},
		{20, 4},
		{37, 4},
	}
	for _, c := range cases {
		src := make([]byte, c.cells)
		for i := range src {
			src[i] = '.'
		}
		if got := NewProgram(src).Rings(); got != c.rings {
			t.Fatalf("%d cells: got=%d rings, want=%d", c.cells, got, c.rings)
		}
	}
}

func TestFetch(t *testing.T) {
	p := NewProgram([]byte("abc"))
	cases := []struct {
		p, q int
		want byte
	}{
		{0, -1, 'a'},
		{-1, 0, 'b'},
		{1, -1, 'c'},
		{0, 0, '.'},
		{0, 1, '.'},
	}
	for _, c := range cases {
		if got := p.fetch(c.p, c.q); got.value != c.want {
			t.Fatalf("fetch(%d, %d): got=%q, want=%q", c.p, c.q, got.value, c.want)
		}
	}
}
