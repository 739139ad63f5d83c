package hex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// DebugConsole is a console that pauses on breakpoint cells (or before
// every instruction when single-stepping) and shows the whole machine:
// the program hexagon with IP positions, the memory neighborhood around
// the MP, and both pointer states.
// commands at the prompt:
//   s:
//     execute one step, pause again.
//   c:
//     continue to the next breakpoint.
//   q:
//     quit.
type DebugConsole struct {
	*Interpreter
	force bool
	color bool
	w     io.Writer
}

// NewDebugConsole wraps an interpreter for interactive debugging.
// Prompt commands are read from the interpreter's input stream, shared
// with the program the same way the ',' and '?' instructions share it.
func NewDebugConsole(interpreter *Interpreter) *DebugConsole {
	return &DebugConsole{
		Interpreter: interpreter,
		color:       isatty.IsTerminal(os.Stdout.Fd()),
		w:           os.Stdout,
	}
}

// Step pauses when the fetched cell has its debug flag set or when
// single-stepping, then executes one tick.
func (d *DebugConsole) Step() (bool, error) {
	p := &d.ips[d.ipIndex]
	if p.ignoreNext {
		p.ignoreNext = false
	} else {
		c := d.program.fetch(p.p, p.q)
		if c.debug || d.force {
			quit, err := d.pause(c)
			if quit || err != nil {
				return quit, err
			}
		}
		done, err := d.execute(p, c.value)
		if done || err != nil {
			return done, err
		}
	}
	d.advance(p)
	d.steps++
	return false, nil
}

// Run steps the machine until the program terminates or the debugger
// quits.
func (d *DebugConsole) Run() error {
	for {
		done, err := d.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// pause prints the machine state and prompts for a command. It reports
// whether the debugger asked to quit.
func (d *DebugConsole) pause(c cell) (bool, error) {
	if c.debug {
		fmt.Fprintln(d.w, "break")
	}
	fmt.Fprintf(d.w, "\nPaused on '%c'\n", c.value)
	d.printProgram()
	fmt.Fprintf(d.w, "Active IP: %d\n", d.ipIndex)
	for i, p := range d.ips {
		fmt.Fprintf(d.w, "IP %s (%+d, %+d) %v\n", d.paint(fmt.Sprintf("%d", i), i+1), p.p, p.q, p.direction)
	}
	d.printMemory()
	facing := "OUTWARDS"
	if !d.mp.out {
		facing = "INWARDS"
	}
	fmt.Fprintf(d.w, "MP: (%+d, %+d) %v %s = %2d\n", d.mp.p, d.mp.q, d.mp.axis, facing, d.memory.edge(d.mp))
	for {
		fmt.Fprint(d.w, ": ")
		b, err := d.in.ReadByte()
		if err != nil {
			// EOF on the command stream, nothing left to wait for.
			return true, nil
		}
		switch b {
		case 's':
			d.force = true
			return false, nil
		case 'c':
			d.force = false
			return false, nil
		case 'q':
			return true, nil
		}
	}
}

// printProgram renders the program hexagon, colorizing each cell an IP
// sits on by the IP's number. Debug cells keep their backtick mark.
func (d *DebugConsole) printProgram() {
	rings := d.program.Rings()
	var at [6]int
	for i, p := range d.ips {
		at[i] = axialToIndex(p.p, p.q, rings)
	}
	i := 0
	for z := -(rings - 1); z < rings; z++ {
		fmt.Fprintf(d.w, "%*s", abs(z), "")
		for x := 0; x < 2*rings-1-abs(z); x++ {
			mark := byte(' ')
			if d.program.cells[i].debug {
				mark = '`'
			}
			s := string([]byte{mark, d.program.cells[i].value})
			for n := 0; n < 6; n++ {
				if at[n] == i {
					s = d.paint(s, n+1)
					break
				}
			}
			fmt.Fprint(d.w, s)
			i++
		}
		fmt.Fprintln(d.w)
	}
}

// printMemory renders the memory grid around the MP, four rings out,
// with the current edge highlighted. Each hexagon shows its Z edge on
// one line and its X and Y edges below it.
func (d *DebugConsole) printMemory() {
	const printRings = 4
	fmt.Fprintf(d.w, "[%d rings allocated]\n", d.memory.Rings())
	for z := printRings; z >= -printRings; z-- {
		x := printRings
		y := -printRings
		if z > 0 {
			x -= z
		}
		if z < 0 {
			y -= z
		}
		indent := strings.Repeat("     ", abs(z))
		fmt.Fprint(d.w, indent)
		for p, q := x, y; abs(p)+abs(q)+abs(z) <= 2*printRings; p, q = p-1, q+1 {
			c := d.memory.peek(d.mp.p+p, d.mp.q+q)
			v := fmt.Sprintf("%2d", c.value[Z])
			if p == 0 && q == 0 && d.mp.axis == Z {
				v = d.paint(v, 1)
			}
			fmt.Fprintf(d.w, "    %s    ", v)
		}
		fmt.Fprintln(d.w)
		fmt.Fprint(d.w, indent)
		for p, q := x, y; abs(p)+abs(q)+abs(z) <= 2*printRings; p, q = p-1, q+1 {
			c := d.memory.peek(d.mp.p+p, d.mp.q+q)
			xv := fmt.Sprintf("%2d", c.value[X])
			if p == 0 && q == 0 && d.mp.axis == X {
				xv = d.paint(xv, 1)
			}
			yv := fmt.Sprintf("%2d", c.value[Y])
			if p == 0 && q == 0 && d.mp.axis == Y {
				yv = d.paint(yv, 1)
			}
			fmt.Fprintf(d.w, ". %s ' %s ", xv, yv)
		}
		fmt.Fprintln(d.w, ".")
	}
}

// paint wraps s in an ANSI color when stdout is a terminal.
func (d *DebugConsole) paint(s string, color int) string {
	if !d.color {
		return s
	}
	return fmt.Sprintf("\x1b[0;3%dm%s\x1b[0m", color, s)
}
