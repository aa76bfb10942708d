// Package coordinator runs the realtime per-cycle state machine: it
// owns the pattern/schedule registries, drains at most one queued
// command per cycle, and pushes each cycle's due PreciseEvents out to
// a MIDI sender. It generalizes the reference sequencer's double-
// buffered playback loop from wall-clock ticks to sample-indexed
// buffer cycles.
package coordinator

import (
	"fmt"
	"sync"

	"github.com/iltempo/interplay/pattern"
	"github.com/iltempo/interplay/precise"
	"github.com/iltempo/interplay/queue"
)

// Sender is anything that can emit a scheduler event, e.g. *midi.Output.
type Sender interface {
	Send(ev precise.PreciseEvent) error
}

// Coordinator owns every running pattern's compiled schedule and steps
// them in lockstep, one audio buffer at a time.
type Coordinator struct {
	mu         sync.RWMutex
	patterns   map[string]pattern.Pattern
	schedules  map[string]*precise.PreciseSchedule
	sampleRate float64
	tempo      float64
	out        Sender
	cmds       *queue.Queue
	onError    func(error)
}

// New builds a Coordinator that sends through out, draining commands
// from cmds. onError is called (non-blocking context: the caller's
// audio-thread budget) whenever a Send fails; pass nil to ignore.
func New(out Sender, cmds *queue.Queue, sampleRate, tempo float64, onError func(error)) *Coordinator {
	if onError == nil {
		onError = func(error) {}
	}
	return &Coordinator{
		patterns:   make(map[string]pattern.Pattern),
		schedules:  make(map[string]*precise.PreciseSchedule),
		sampleRate: sampleRate,
		tempo:      tempo,
		out:        out,
		cmds:       cmds,
		onError:    onError,
	}
}

// SetTempo changes the tempo and forces a full recompile of every
// running schedule — tempo changes are rare, and recompiling is the
// only way to keep sample offsets exact (see precise.Compile).
func (c *Coordinator) SetTempo(tempo float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tempo = tempo
	c.recompileAllLocked()
}

func (c *Coordinator) recompileAllLocked() {
	for name, p := range c.patterns {
		playing := true
		if old, ok := c.schedules[name]; ok {
			playing = old.Playing
		}
		c.schedules[name] = precise.Compile(p, c.sampleRate, c.tempo, playing)
	}
}

// ProcessCycle drains at most one queued command, then collects and
// sends every PreciseEvent due in [songPos, songPos+bufSize) across
// all running schedules. Meant to be called once per audio buffer from
// the realtime thread.
func (c *Coordinator) ProcessCycle(songPos, bufSize int64) {
	c.mu.Lock()
	if cmd, ok := c.cmds.Pop(); ok {
		c.applyLocked(cmd)
	}

	type due struct {
		name  string
		event precise.PreciseEvent
	}
	var all []due
	for name, s := range c.schedules {
		for _, ev := range s.GetEvents(songPos, bufSize) {
			all = append(all, due{name, ev})
		}
	}
	c.mu.Unlock()

	for _, d := range all {
		if err := c.out.Send(d.event); err != nil {
			c.onError(fmt.Errorf("coordinator: pattern %q: %w", d.name, err))
		}
	}
}

func (c *Coordinator) applyLocked(cmd queue.Command) {
	switch cmd.Kind {
	case queue.PatternStart:
		p, ok := cmd.Pattern.(pattern.Pattern)
		if !ok {
			c.onError(fmt.Errorf("coordinator: PatternStart %q carried no pattern.Pattern payload", cmd.Name))
			return
		}
		if old, ok := c.schedules[cmd.Name]; ok {
			c.emitNow(cmd.Name, old.DrainActiveVoices())
		}
		c.patterns[cmd.Name] = p
		c.schedules[cmd.Name] = precise.Compile(p, c.sampleRate, c.tempo, true)

	case queue.PatternStop:
		if s, ok := c.schedules[cmd.Name]; ok {
			c.emitNow(cmd.Name, s.Stop())
		}

	case queue.PatternStopAll:
		for name, s := range c.schedules {
			c.emitNow(name, s.Stop())
		}

	case queue.PatternClear:
		if s, ok := c.schedules[cmd.Name]; ok {
			c.emitNow(cmd.Name, s.DrainActiveVoices())
			delete(c.schedules, cmd.Name)
			delete(c.patterns, cmd.Name)
		}

	case queue.PatternClearAll:
		c.clearAllLocked()
	}
}

func (c *Coordinator) clearAllLocked() {
	for name, s := range c.schedules {
		c.emitNow(name, s.DrainActiveVoices())
	}
	c.schedules = make(map[string]*precise.PreciseSchedule)
	c.patterns = make(map[string]pattern.Pattern)
}

// ClearAll drains every running pattern's active voices and removes it
// from the registry synchronously, bypassing the command queue. For
// transport/console callers that want an immediate effect rather than
// waiting for the next realtime cycle to drain queue.PatternClearAll.
func (c *Coordinator) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearAllLocked()
}

func (c *Coordinator) emitNow(name string, events []precise.PreciseEvent) {
	for _, ev := range events {
		if err := c.out.Send(ev); err != nil {
			c.onError(fmt.Errorf("coordinator: pattern %q: %w", name, err))
		}
	}
}

// Names returns the currently registered pattern names, for introspection
// (e.g. a GET /patterns endpoint).
func (c *Coordinator) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.patterns))
	for name := range c.patterns {
		names = append(names, name)
	}
	return names
}
