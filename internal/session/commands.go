// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Command words.
const (
	cmdCycle     = "cycle"
	cmdSet       = "set"
	cmdUnset     = "unset"
	cmdScore     = "score"
	cmdBreakdown = "breakdown"
	cmdNodes     = "nodes"
	cmdEdges     = "edges"
	cmdHelp      = "help"
	cmdQuit      = "quit"
	cmdExit      = "exit"
)

// Prompt is written before every input line.
const Prompt = "> "

const helpText = `commands:
  cycle <node>         move node to the next community
  set <node> <c>       put node in community c (integer >= 0)
  unset <node>         remove node from its community
  score                print the current modularity
  breakdown            print each community's contribution
  nodes                list nodes and their communities
  edges                list edges and weights
  help                 show this text
  quit                 end the session`

// Execute runs one command line and writes its output to out. Blank lines do
// nothing. A quit command returns errQuit.
func (s *Session) Execute(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case cmdCycle:
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		c, q, err := s.Cycle(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> community %d\n", args[0], c)
		printScore(out, q)

	case cmdSet:
		if err := wantArgs(cmd, args, 2); err != nil {
			return err
		}
		c, err := strconv.Atoi(args[1])
		if err != nil || c < 0 {
			return fmt.Errorf("%s: community %q is not a non-negative integer: %w", cmd, args[1], ErrBadArgument)
		}
		q, err := s.Set(args[0], c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> community %d\n", args[0], c)
		printScore(out, q)

	case cmdUnset:
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		q, err := s.Unset(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> unassigned\n", args[0])
		printScore(out, q)

	case cmdScore:
		if err := wantArgs(cmd, args, 0); err != nil {
			return err
		}
		printScore(out, s.Score())

	case cmdBreakdown:
		if err := wantArgs(cmd, args, 0); err != nil {
			return err
		}
		res := s.Breakdown()
		for _, sc := range res.Communities {
			fmt.Fprintf(out, "community %d: members=%d internal=%g degree=%g contribution=%.4f\n",
				sc.Community, len(sc.Members), sc.InternalWeight, sc.TotalDegree, sc.Contribution)
		}
		if len(res.Unassigned) > 0 {
			fmt.Fprintf(out, "unassigned: %d\n", len(res.Unassigned))
		}
		printScore(out, res.Modularity)

	case cmdNodes:
		p := s.Partition()
		for _, n := range s.graph.Nodes() {
			if c, ok := p.Lookup(n); ok {
				fmt.Fprintf(out, "%s %d\n", n, c)
			} else {
				fmt.Fprintf(out, "%s -\n", n)
			}
		}

	case cmdEdges:
		for _, e := range s.graph.Edges() {
			fmt.Fprintf(out, "%s %s %g\n", e.From, e.To, e.Weight)
		}

	case cmdHelp:
		fmt.Fprintln(out, helpText)

	case cmdQuit, cmdExit:
		return errQuit

	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}

	return nil
}

// Run reads commands from in until EOF, quit, or ctx is done. Command errors
// are written to out and the loop continues. It returns ctx.Err() on
// cancellation and nil otherwise, unless reading in fails.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("session started", "nodes", s.graph.NodeCount(), "edges", s.graph.EdgeCount(), "communities", s.communities)
	defer s.logger.Info("session ended")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	printScore(out, s.Score())
	for {
		if s.prompt {
			fmt.Fprint(out, Prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if s.prompt {
					fmt.Fprintln(out)
				}
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("session: read: %w", err)
					}
				default:
				}
				return nil
			}
			err := s.Execute(line, out)
			if err == errQuit {
				return nil
			}
			if err != nil {
				s.logger.Warn("command failed", "line", line, "err", err)
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d: %w", cmd, n, len(args), ErrBadArgument)
	}

	return nil
}

func unknownNode(node string) error {
	return fmt.Errorf("%q: %w", node, ErrUnknownNode)
}

func printScore(out io.Writer, q float64) {
	fmt.Fprintf(out, "modularity = %.4f\n", q)
}
