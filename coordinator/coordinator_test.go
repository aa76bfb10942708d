package coordinator

import (
	"testing"

	"github.com/iltempo/interplay/duration"
	"github.com/iltempo/interplay/pattern"
	"github.com/iltempo/interplay/precise"
	"github.com/iltempo/interplay/queue"
)

type fakeSender struct {
	events []precise.PreciseEvent
}

func (f *fakeSender) Send(ev precise.PreciseEvent) error {
	f.events = append(f.events, ev)
	return nil
}

func onePatternBar(pitch int) pattern.Pattern {
	return pattern.Pattern{
		Channel:    1,
		LengthBars: duration.MustNew(1, 1),
		Events: []pattern.Event{
			{Dur: duration.MustNew(1, 1), Action: pattern.EventAction{
				Kind: pattern.ActionNote,
				Note: pattern.Note{Pitch: pitch, Velocity: 0.8, Dur: duration.MustNew(1, 2)},
			}},
		},
	}
}

func TestPatternStartEmitsNoteOnNextCycle(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)

	if len(sender.events) != 1 || sender.events[0].Kind != precise.KindNoteOn {
		t.Fatalf("expected a single NoteOn, got %+v", sender.events)
	}
	if sender.events[0].Note != 60 {
		t.Errorf("note = %d, want 60", sender.events[0].Note)
	}
}

func TestPatternStopDrainsActiveVoiceImmediately(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)
	sender.events = nil

	q.Push(queue.Command{Kind: queue.PatternStop, Name: "lead"})
	c.ProcessCycle(256, 256)

	if len(sender.events) != 1 || sender.events[0].Kind != precise.KindNoteOff {
		t.Fatalf("expected a single NoteOff from Stop, got %+v", sender.events)
	}
}

func TestPatternClearRemovesRegistryEntry(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)

	q.Push(queue.Command{Kind: queue.PatternClear, Name: "lead"})
	c.ProcessCycle(256, 256)

	if len(c.Names()) != 0 {
		t.Errorf("Names() = %v, want empty after clear", c.Names())
	}
}

func TestSetTempoRecompilesPreservingPlayingState(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)

	c.SetTempo(140)

	sched := c.schedules["lead"]
	if sched == nil || !sched.Playing {
		t.Fatal("schedule should still be playing after a tempo-driven recompile")
	}
}

func TestPatternStartDrainsPreviousScheduleActiveVoices(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)
	sender.events = nil

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "lead", Pattern: onePatternBar(67)})
	c.ProcessCycle(256, 256)

	foundDrain := false
	for _, ev := range sender.events {
		if (ev.Kind == precise.KindNoteOff || ev.Kind == precise.KindVoiceTerminated) && ev.Note == 60 {
			foundDrain = true
		}
	}
	if !foundDrain {
		t.Fatalf("restarting %q should drain the old schedule's active voice (note 60), got %+v", "lead", sender.events)
	}
}

func TestClearAllIsSynchronousAndDrains(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "a", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)
	// Schedules are song-aligned, so "b" is started at the next bar
	// (96000 samples at 48kHz/120 BPM) where both notes sound.
	q.Push(queue.Command{Kind: queue.PatternStart, Name: "b", Pattern: onePatternBar(64)})
	c.ProcessCycle(96000, 256)

	sender.events = nil
	c.ClearAll()

	if len(sender.events) != 2 {
		t.Fatalf("expected 2 NoteOffs (one per drained pattern) from ClearAll, got %d: %+v", len(sender.events), sender.events)
	}
	for _, ev := range sender.events {
		if ev.Kind != precise.KindNoteOff {
			t.Errorf("ClearAll event kind = %v, want KindNoteOff", ev.Kind)
		}
	}
	if len(c.Names()) != 0 {
		t.Errorf("Names() = %v, want empty after ClearAll", c.Names())
	}
}

func TestStopAllDrainsEveryRunningPattern(t *testing.T) {
	sender := &fakeSender{}
	q := queue.New()
	c := New(sender, q, 48000, 120, nil)

	q.Push(queue.Command{Kind: queue.PatternStart, Name: "a", Pattern: onePatternBar(60)})
	c.ProcessCycle(0, 256)
	// Schedules are song-aligned, so "b" is started at the next bar
	// (96000 samples at 48kHz/120 BPM) where both notes sound.
	q.Push(queue.Command{Kind: queue.PatternStart, Name: "b", Pattern: onePatternBar(64)})
	c.ProcessCycle(96000, 256)

	sender.events = nil
	q.Push(queue.Command{Kind: queue.PatternStopAll})
	c.ProcessCycle(96256, 256)

	if len(sender.events) != 2 {
		t.Fatalf("expected 2 NoteOffs from StopAll, got %d: %+v", len(sender.events), sender.events)
	}
}
