// Package menu runs the interactive counter session: a prompt loop that
// reports, grows, and finally releases a singly linked list of integers.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/percona-lab/linklab/errors"
	"github.com/percona-lab/linklab/list"
	"github.com/percona-lab/linklab/log"
)

const prompt = "1) Count nodes\n2) Add node\n3) Exit\n> "

// Menu choices.
const (
	ChoiceCount = 1
	ChoiceAdd   = 2
	ChoiceExit  = 3
)

var errNotNumber = errors.New("not a number")

// Session owns the list for the lifetime of one Run.
type Session struct {
	in   *bufio.Scanner
	out  io.Writer
	list *list.Single[int]
	err  error
}

// New returns a session reading whitespace-separated integers from in and
// writing prompts and reports to out. opts configure the session list.
func New(in io.Reader, out io.Writer, opts ...list.Option) *Session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Session{
		in:   sc,
		out:  out,
		list: list.NewSingle[int](opts...),
	}
}

// Run prompts until the exit choice is read. End of input or a non-numeric
// choice also ends the session. The list is released on every return path.
// Run fails only if reading input or writing output fails.
func (s *Session) Run(ctx context.Context) error {
	lg := log.Ctx(ctx).With(log.Scope("menu"))

	defer func() {
		lg.Debugf("Session ended, released %d nodes", s.list.Release())
	}()

	for s.err == nil {
		s.printf(prompt)

		choice, err := s.readInt()
		if err != nil {
			if !errors.Is(err, errNotNumber) && !errors.Is(err, io.EOF) {
				return errors.Wrap(err, "read choice")
			}

			lg.Debug("No choice read, leaving")

			break
		}

		switch choice {
		case ChoiceCount:
			s.report()
		case ChoiceAdd:
			if !s.add(lg) {
				return errors.Wrap(s.in.Err(), "read value")
			}
		case ChoiceExit:
			return errors.Wrap(s.err, "write")
		default:
			s.printf("Invalid option\n")
		}
	}

	return errors.Wrap(s.err, "write")
}

func (s *Session) report() {
	s.printf("Count: %d\n", s.list.Len())

	for n := range s.list.Nodes() {
		s.printf("Node at %p: %d\n", n, n.Value())
	}
}

// add reads a value and prepends it. It returns false at end of input.
func (s *Session) add(lg *log.Logger) bool {
	s.printf("Value: ")

	val, err := s.readInt()
	if err != nil {
		if errors.Is(err, errNotNumber) {
			s.printf("Invalid value\n")

			return true
		}

		return false
	}

	if !s.list.Prepend(val) {
		s.printf("Node limit reached\n")

		return true
	}

	lg.Tracef("Prepended %d", val)

	return true
}

func (s *Session) readInt() (int, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, err //nolint:wrapcheck
		}

		return 0, io.EOF
	}

	v, err := strconv.Atoi(s.in.Text())
	if err != nil {
		return 0, errNotNumber
	}

	return v, nil
}

func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}

	_, s.err = fmt.Fprintf(s.out, format, args...)
}
