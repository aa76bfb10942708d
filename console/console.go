// Package console is an interactive debug REPL for driving the
// coordinator directly — a developer tool, not the pattern scripting
// host. Grounded on the reference sequencer's command handler and
// main-loop wiring: readline-backed interactive mode, plain
// line-scanning batch mode for piped input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/iltempo/interplay/duration"
	"github.com/iltempo/interplay/pattern"
	"github.com/iltempo/interplay/queue"
)

// TempoSetter is the coordinator method console needs beyond the queue.
type TempoSetter interface {
	SetTempo(tempo float64)
}

// Handler parses REPL command lines into queue.Commands.
type Handler struct {
	cmds  *queue.Queue
	tempo TempoSetter
}

// New builds a Handler that enqueues onto cmds and can retune tempo
// directly through tempo.
func New(cmds *queue.Queue, tempo TempoSetter) *Handler {
	return &Handler{cmds: cmds, tempo: tempo}
}

// ProcessCommand parses and executes a single command line.
func (h *Handler) ProcessCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "start":
		return h.handleStart(parts)
	case "stop":
		return h.handleStop(parts)
	case "stopall":
		return h.enqueue(queue.Command{Kind: queue.PatternStopAll})
	case "clear":
		return h.handleClear(parts)
	case "clearall":
		return h.enqueue(queue.Command{Kind: queue.PatternClearAll})
	case "tempo":
		return h.handleTempo(parts)
	case "help":
		return h.handleHelp()
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// handleStart: start <name> <channel> <lengthBarsNum>/<lengthBarsDen> <pattern text...>
func (h *Handler) handleStart(parts []string) error {
	if len(parts) < 5 {
		return fmt.Errorf("usage: start <name> <channel> <num/den> <pattern text>")
	}
	name := parts[1]

	channel, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid channel: %s", parts[2])
	}

	lengthBars, err := parseFraction(parts[3])
	if err != nil {
		return fmt.Errorf("invalid length_bars: %w", err)
	}

	text := strings.Join(parts[4:], " ")
	p, err := pattern.Compile(text, channel, lengthBars)
	if err != nil {
		return fmt.Errorf("pattern error: %w", err)
	}

	if err := h.enqueue(queue.Command{Kind: queue.PatternStart, Name: name, Pattern: p}); err != nil {
		return err
	}
	fmt.Printf("Started %q on channel %d\n", name, channel)
	return nil
}

func (h *Handler) handleStop(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("usage: stop <name>")
	}
	return h.enqueue(queue.Command{Kind: queue.PatternStop, Name: parts[1]})
}

func (h *Handler) handleClear(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("usage: clear <name>")
	}
	return h.enqueue(queue.Command{Kind: queue.PatternClear, Name: parts[1]})
}

func (h *Handler) handleTempo(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("usage: tempo <bpm>")
	}
	bpm, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || bpm <= 0 {
		return fmt.Errorf("invalid tempo: %s", parts[1])
	}
	h.tempo.SetTempo(bpm)
	fmt.Printf("Set tempo to %g\n", bpm)
	return nil
}

func (h *Handler) handleHelp() error {
	fmt.Println("commands: start <name> <channel> <num/den> <pattern>, stop <name>, stopall,")
	fmt.Println("          clear <name>, clearall, tempo <bpm>, help, quit")
	return nil
}

func (h *Handler) enqueue(cmd queue.Command) error {
	if !h.cmds.Push(cmd) {
		return fmt.Errorf("command queue is full")
	}
	return nil
}

func parseFraction(s string) (duration.Duration, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("invalid numerator: %s", parts[0])
	}
	if len(parts) == 1 {
		return duration.New(num, 1)
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("invalid denominator: %s", parts[1])
	}
	return duration.New(num, den)
}

// ReadLoop drives an interactive readline-backed REPL until "quit"/"exit" or EOF.
func (h *Handler) ReadLoop() error {
	rl, err := readline.New("> ")
	if err != nil {
		return fmt.Errorf("console: creating readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if strings.ToLower(line) == "quit" || strings.ToLower(line) == "exit" {
			return nil
		}
		if err := h.ProcessCommand(line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// ProcessBatch reads and executes commands from reader line by line,
// for piped/scripted input. Returns whether every command succeeded
// and whether an explicit exit command was seen.
func (h *Handler) ProcessBatch(reader io.Reader) (ok bool, shouldExit bool) {
	scanner := bufio.NewScanner(reader)
	ok = true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ToLower(line) == "quit" || strings.ToLower(line) == "exit" {
			return ok, true
		}
		fmt.Println(">", line)
		if err := h.ProcessCommand(line); err != nil {
			fmt.Printf("Error: %v\n", err)
			ok = false
		}
	}
	return ok, false
}
