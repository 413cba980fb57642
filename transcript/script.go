// Package transcript replays a scripted conversation against the widget
// without a terminal, driving the reply timer with a virtual clock.
//
// A script is line oriented:
//
//	# comment
//	Hello there           submit a message
//	/detailed on|off      set the reply-length toggle
//	/wait 800ms           advance the clock
//	/new                  start a new chat
//	/select 2             select the second history entry (newest first)
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrBadArgument      = errors.New("bad argument")
)

type StepKind int

const (
	StepSubmit StepKind = iota
	StepNewChat
	StepDetailed
	StepSelect
	StepWait
)

// Step is one parsed script line.
type Step struct {
	Line     int
	Kind     StepKind
	Text     string        // StepSubmit
	Detailed bool          // StepDetailed
	Position int           // StepSelect, 1-based
	Wait     time.Duration // StepWait
}

// Parse reads a script. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		step, err := parseLine(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		if step.Kind == StepSubmit {
			step.Text = line
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseLine(line string) (Step, error) {
	if !strings.HasPrefix(line, "/") {
		return Step{Kind: StepSubmit}, nil
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "/new":
		if len(args) != 0 {
			return Step{}, fmt.Errorf("%s takes no argument: %w", name, ErrBadArgument)
		}
		return Step{Kind: StepNewChat}, nil

	case "/detailed":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s needs on or off: %w", name, ErrBadArgument)
		}
		switch strings.ToLower(args[0]) {
		case "on", "true":
			return Step{Kind: StepDetailed, Detailed: true}, nil
		case "off", "false":
			return Step{Kind: StepDetailed, Detailed: false}, nil
		}
		return Step{}, fmt.Errorf("%s %q: %w", name, args[0], ErrBadArgument)

	case "/select":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s needs a position: %w", name, ErrBadArgument)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return Step{}, fmt.Errorf("%s %q: %w", name, args[0], ErrBadArgument)
		}
		return Step{Kind: StepSelect, Position: n}, nil

	case "/wait":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s needs a duration: %w", name, ErrBadArgument)
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return Step{}, fmt.Errorf("%s %q: %w", name, args[0], ErrBadArgument)
		}
		return Step{Kind: StepWait, Wait: d}, nil
	}

	return Step{}, fmt.Errorf("%s: %w", name, ErrUnknownDirective)
}
