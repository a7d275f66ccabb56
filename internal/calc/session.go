// SPDX-License-Identifier: MIT

package calc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/symatrix/matrix"
	"github.com/katalvlaran/symatrix/term"
)

// User-facing messages.
const (
	msgNeedTwo     = "At least two matrices of same size needed for operation."
	msgMissingVar  = "Value of variable missing"
	msgNoMatrices  = "No matrices added"
	msgBadBinding  = `The format needs to be "variable=value", ex. "x=7"`
	msgBadInput    = "Input not valid"
	msgQuit        = "Quitting."
	msgEmptyStack  = "Stack is empty"
	msgStackClears = "Stack cleared"
)

const banner = `Matrix calculator
=================
Add matrix:   input a square matrix such as [[x,1][2,y]] to push it
Operations:   input '+', '-' or '*' to combine the two latest matrices
Valuation:    input variable=value to bind a variable, e.g. x=7
Values:       input "values" to list bindings
Result:       input '=' to evaluate the latest matrix
Stack:        input "stack" to list matrices, "clear" to drop them
Quit:         input "quit" to quit
`

// Session holds the calculator state. It is not safe for concurrent use.
type Session struct {
	stack  []*matrix.Symbolic
	values term.Values
	out    io.Writer
	log    *slog.Logger
}

// NewSession returns an empty session that writes replies to out.
func NewSession(out io.Writer, opts ...Option) *Session {
	s := &Session{values: term.Values{}, out: out, log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Depth returns the number of matrices on the stack.
func (s *Session) Depth() int { return len(s.stack) }

// Top returns a copy of the top matrix, or nil when the stack is empty.
func (s *Session) Top() *matrix.Symbolic {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1].Clone()
}

// Values returns a copy of the current valuation.
func (s *Session) Values() term.Values {
	out := make(term.Values, len(s.values))
	for c, x := range s.values {
		out[c] = x
	}

	return out
}

// WriteBanner prints the command summary.
func (s *Session) WriteBanner() {
	fmt.Fprint(s.out, banner)
}

// Run reads in line by line and executes every whitespace-separated command.
// When prompt is non-empty it is printed before each line. Run returns nil
// after "quit" or at end of input.
func (s *Session) Run(in io.Reader, prompt string) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for {
		if prompt != "" {
			fmt.Fprint(s.out, prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		for _, cmd := range strings.Fields(sc.Text()) {
			if s.Exec(cmd) {
				return nil
			}
		}
	}
}

// Exec runs one command and reports whether it was "quit".
func (s *Session) Exec(cmd string) (quit bool) {
	cmd = strings.TrimSpace(cmd)
	switch {
	case cmd == "":
		return false
	case cmd == "quit":
		s.println(msgQuit)
		return true
	case cmd == "+" || cmd == "-" || cmd == "*":
		op, _ := term.ParseOp(cmd)
		s.apply(op)
	case cmd == "=":
		s.evaluate()
	case cmd == "values":
		s.listValues()
	case cmd == "stack":
		s.listStack()
	case cmd == "clear":
		s.stack = s.stack[:0]
		s.println(msgStackClears)
	case term.IsVarName(cmd[0]):
		s.bind(cmd)
	default:
		s.push(cmd)
	}

	return false
}

// apply pops two, two then one, and pushes one op two. On failure the
// stack is left as it was.
func (s *Session) apply(op term.Op) {
	if len(s.stack) < 2 {
		s.log.Warn("operation needs two matrices", "op", op.String(), "depth", len(s.stack))
		s.println(msgNeedTwo)
		return
	}
	one, two := s.stack[len(s.stack)-2], s.stack[len(s.stack)-1]
	res, err := matrix.ApplyOp(op, one, two)
	if err != nil {
		s.log.Warn("operation failed", "op", op.String(), "error", err)
		s.println(msgNeedTwo)
		return
	}
	s.stack = append(s.stack[:len(s.stack)-2], res)
	s.log.Debug("applied operation", "op", op.String(), "result", res.String())
	s.println(fmt.Sprintf("Performed %s %s %s", one, op, two))
}

func (s *Session) evaluate() {
	if len(s.stack) == 0 {
		s.println(msgNoMatrices)
		return
	}
	res, err := matrix.Evaluate(s.stack[len(s.stack)-1], s.values)
	if err != nil {
		s.log.Warn("evaluation failed", "error", err)
		s.println(msgMissingVar)
		return
	}
	s.println("Result: " + res.String())
}

func (s *Session) listValues() {
	for _, c := range s.values.Names() {
		s.println(fmt.Sprintf("%c = %d", c, s.values[c]))
	}
}

func (s *Session) listStack() {
	if len(s.stack) == 0 {
		s.println(msgEmptyStack)
		return
	}
	for i := len(s.stack) - 1; i >= 0; i-- {
		s.println(s.stack[i].String())
	}
}

// bind handles "c=value".
func (s *Session) bind(cmd string) {
	if len(cmd) < 3 || cmd[1] != '=' {
		s.println(msgBadBinding)
		return
	}
	x, err := strconv.Atoi(cmd[2:])
	if err != nil {
		s.log.Warn("bad binding", "input", cmd, "error", err)
		s.println(msgBadBinding)
		return
	}
	if err := s.values.Set(cmd[0], x); err != nil {
		s.println(msgBadBinding)
		return
	}
	s.log.Debug("bound variable", "name", string(cmd[0]), "value", x)
	s.println(fmt.Sprintf("Added valuation %c = %d", cmd[0], x))
}

func (s *Session) push(cmd string) {
	m, err := matrix.ParseSymbolic(cmd)
	if err != nil {
		s.log.Warn("rejected matrix", "input", cmd, "error", err)
		s.println(msgBadInput)
		return
	}
	s.stack = append(s.stack, m)
	s.log.Debug("pushed matrix", "matrix", m.String(), "depth", len(s.stack))
	s.println("Added " + m.String())
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
