package hex

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Console is a runnable Hexagony machine.
type Console interface {
	Reset()
	Step() (bool, error)
	Run() error
}

// Interpreter executes a program hexagon over the edge memory grid. One
// of its six instruction pointers runs per step, time-sliced; there is
// no parallelism between them.
type Interpreter struct {
	program *Program
	memory  *Memory
	mp      pointer
	ips     [6]ip
	ipIndex int
	steps   uint64
	in      *bufio.Reader
	out     io.Writer
}

// NewConsole creates a console for the program, reading the program's
// input from in and writing its output to out. If debug is true, this
// creates a debug console that pauses before every instruction; a
// program with backtick breakpoints gets a debug console that pauses
// only on those.
func NewConsole(program *Program, in io.Reader, out io.Writer, debug bool) Console {
	interpreter := &Interpreter{
		program: program,
		in:      bufio.NewReader(in),
		out:     out,
	}
	interpreter.Reset()
	if debug {
		d := NewDebugConsole(interpreter)
		d.force = true
		return d
	}
	if program.hasBreakpoints() {
		return NewDebugConsole(interpreter)
	}
	return interpreter
}

// Reset puts the machine back into its start state: empty memory, the
// memory pointer on the origin's Z edge facing out, and the six
// instruction pointers on the hexagon's corners with IP 0 active.
func (it *Interpreter) Reset() {
	it.memory = NewMemory()
	it.mp = newPointer()
	it.ips = newIPs(it.program.Rings())
	it.ipIndex = 0
	it.steps = 0
}

// Step executes one tick of the active instruction pointer and reports
// whether the program terminated.
func (it *Interpreter) Step() (bool, error) {
	p := &it.ips[it.ipIndex]
	if p.ignoreNext {
		p.ignoreNext = false
	} else {
		c := it.program.fetch(p.p, p.q)
		if glog.V(2) {
			glog.Infof("step %d: IP%d '%c' at (%d, %d) %v", it.steps, it.ipIndex, c.value, p.p, p.q, p.direction)
		}
		done, err := it.execute(p, c.value)
		if done || err != nil {
			return done, err
		}
	}
	it.advance(p)
	it.steps++
	return false, nil
}

// Run steps the machine until the program terminates via '@'.
func (it *Interpreter) Run() error {
	for {
		done, err := it.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// execute dispatches a single instruction. It reports whether the
// instruction terminated the program.
func (it *Interpreter) execute(p *ip, instr byte) (bool, error) {
	switch {
	case instr >= 'A' && instr <= 'Z' || instr >= 'a' && instr <= 'z':
		// A letter sets the current memory edge to its character value.
		it.memory.setEdge(it.mp, Edge(instr))

	case instr >= '0' && instr <= '9':
		// A digit multiplies the current memory edge by 10 and adds
		// itself. On a negative edge the digit is subtracted instead,
		// extending the magnitude away from zero.
		e := it.memory.edge(it.mp)
		d := Edge(instr - '0')
		if e < 0 {
			d = -d
		}
		it.memory.setEdge(it.mp, e*10+d)

	default:
		switch instr {
		case '.': // no-op

		case '@': // terminates the program
			return true, nil

		case ')': // increments the current memory edge
			it.memory.setEdge(it.mp, it.memory.edge(it.mp)+1)

		case '(': // decrements the current memory edge
			it.memory.setEdge(it.mp, it.memory.edge(it.mp)-1)

		case '+': // left neighbor + right neighbor
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, left)+it.memory.neighbor(it.mp, right))

		case '-': // left neighbor - right neighbor
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, left)-it.memory.neighbor(it.mp, right))

		case '*': // left neighbor * right neighbor
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, left)*it.memory.neighbor(it.mp, right))

		case ':': // left neighbor / right neighbor, truncated toward zero.
			// Division by zero panics and aborts the process.
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, left)/it.memory.neighbor(it.mp, right))

		case '%': // left neighbor % right neighbor, sign of the left operand
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, left)%it.memory.neighbor(it.mp, right))

		case '~': // negates the current memory edge
			it.memory.setEdge(it.mp, -it.memory.edge(it.mp))

		case ',': // reads one byte from input, -1 on EOF
			b, err := it.in.ReadByte()
			if err != nil {
				it.memory.setEdge(it.mp, -1)
			} else {
				it.memory.setEdge(it.mp, Edge(b))
			}

		case '?': // reads the next signed decimal integer from input, 0 on EOF
			it.memory.setEdge(it.mp, it.scanNumber())

		case ';': // writes the current memory edge modulo 256 as a byte
			b := byte(modulo(int(it.memory.edge(it.mp)), 256))
			if _, err := it.out.Write([]byte{b}); err != nil {
				return false, err
			}

		case '!': // writes the decimal representation of the current memory edge
			if _, err := fmt.Fprintf(it.out, "%d", it.memory.edge(it.mp)); err != nil {
				return false, err
			}

		case '$': // the IP skips the next instruction in its current direction
			p.ignoreNext = true

		case '/', '\\', '_', '|', '<', '>':
			p.direction = p.direction.deflect(instr, it.memory.edge(it.mp) > 0)

		case '[': // switches to the previous IP
			it.ipIndex = modulo(it.ipIndex-1, 6)

		case ']': // switches to the next IP
			it.ipIndex = modulo(it.ipIndex+1, 6)

		case '#': // switches to the IP indexed by the current edge modulo 6
			it.ipIndex = modulo(int(it.memory.edge(it.mp)), 6)

		case '{': // moves the MP to its left neighbor
			it.mp.move(left)

		case '}': // moves the MP to its right neighbor
			it.mp.move(right)

		case '"': // moves the MP backwards and to the left, equivalent to =}=
			it.mp.reverse()
			it.mp.move(right)
			it.mp.reverse()

		case '\'': // moves the MP backwards and to the right, equivalent to ={=
			it.mp.reverse()
			it.mp.move(left)
			it.mp.reverse()

		case '=': // reverses the MP, swapping its left and right neighbors
			it.mp.reverse()

		case '^': // branches the MP left on a non-positive edge, right otherwise
			if it.memory.edge(it.mp) <= 0 {
				it.mp.move(left)
			} else {
				it.mp.move(right)
			}

		case '&': // copies the left (non-positive edge) or right (positive) neighbor
			s := left
			if it.memory.edge(it.mp) > 0 {
				s = right
			}
			it.memory.setEdge(it.mp, it.memory.neighbor(it.mp, s))
		}
	}
	return false, nil
}

// scanNumber discards input until a digit, '-' or '+' is found, then
// reads as many bytes as form a signed decimal integer. It returns 0
// when EOF is reached first, and also when a sign has no digits after
// it (the sign stays consumed).
func (it *Interpreter) scanNumber() Edge {
	var b byte
	var err error
	for {
		b, err = it.in.ReadByte()
		if err != nil {
			return 0
		}
		if b == '+' || b == '-' || '0' <= b && b <= '9' {
			break
		}
	}
	negative := b == '-'
	var v Edge
	if '0' <= b && b <= '9' {
		v = Edge(b - '0')
	}
	for {
		b, err = it.in.ReadByte()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			it.in.UnreadByte()
			break
		}
		v = v*10 + Edge(b-'0')
	}
	if negative {
		return -v
	}
	return v
}

// advance moves the IP one hex step and, when the step would leave the
// program hexagon, teleports it to the opposite side.
func (it *Interpreter) advance(p *ip) {
	off := directionOffset[p.direction]
	np := p.p + off.dp
	nq := p.q + off.dq
	nr := -np - nq
	if abs(np)+abs(nq)+abs(nr) >= 2*it.program.Rings() {
		np, nq = it.reflect(p, np, nq, nr)
	}
	p.p = np
	p.q = nq
}

// reflect maps a step off the hexagon back onto it. Walking off a flat
// side picks the reflection axis from the signs of the would-be cubic
// coordinate; walking off a corner lands on a zero coordinate and
// branches between two sides on the current memory edge. The IP's
// direction is unchanged.
func (it *Interpreter) reflect(p *ip, np, nq, nr int) (int, int) {
	var reflection axis
	e := it.memory.edge(it.mp)
	switch {
	case np == 0:
		if e > 0 {
			reflection = Y
		} else {
			reflection = Z
		}
	case nq == 0:
		if e > 0 {
			reflection = Z
		} else {
			reflection = X
		}
	case nr == 0:
		if e > 0 {
			reflection = X
		} else {
			reflection = Y
		}
	case nq*nr > 0:
		reflection = X
	case nr*np > 0:
		reflection = Y
	case np*nq > 0:
		reflection = Z
	default:
		glog.Fatalf("No reflection axis for step to (%d, %d, %d) from (%d, %d)", np, nq, nr, p.p, p.q)
	}
	switch reflection {
	case X:
		return -p.p, p.p + p.q
	case Y:
		return p.p + p.q, -p.q
	default:
		return -p.q, -p.p
	}
}
