package console

import (
	"strings"
	"testing"

	"github.com/iltempo/interplay/queue"
)

type fakeTempo struct{ last float64 }

func (f *fakeTempo) SetTempo(t float64) { f.last = t }

func TestHandleStartEnqueuesCompiledPattern(t *testing.T) {
	cmds := queue.New()
	h := New(cmds, &fakeTempo{})

	if err := h.ProcessCommand("start lead 1 1/1 [Cx D'g]"); err != nil {
		t.Fatalf("ProcessCommand error: %v", err)
	}

	cmd, ok := cmds.Pop()
	if !ok {
		t.Fatal("expected a queued command")
	}
	if cmd.Kind != queue.PatternStart || cmd.Name != "lead" {
		t.Fatalf("cmd = %+v, want PatternStart lead", cmd)
	}
}

func TestHandleStartRejectsBadPatternText(t *testing.T) {
	cmds := queue.New()
	h := New(cmds, &fakeTempo{})

	if err := h.ProcessCommand("start lead 1 1/1 [Cx"); err == nil {
		t.Fatal("expected an error for an unterminated group")
	}
}

func TestHandleStopEnqueuesByName(t *testing.T) {
	cmds := queue.New()
	h := New(cmds, &fakeTempo{})

	if err := h.ProcessCommand("stop lead"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd, ok := cmds.Pop()
	if !ok || cmd.Kind != queue.PatternStop || cmd.Name != "lead" {
		t.Errorf("cmd = %+v, ok=%v, want PatternStop lead", cmd, ok)
	}
}

func TestHandleTempoCallsSetTempo(t *testing.T) {
	cmds := queue.New()
	tempo := &fakeTempo{}
	h := New(cmds, tempo)

	if err := h.ProcessCommand("tempo 140"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tempo.last != 140 {
		t.Errorf("tempo.last = %v, want 140", tempo.last)
	}
}

func TestProcessBatchStopsOnExit(t *testing.T) {
	cmds := queue.New()
	h := New(cmds, &fakeTempo{})

	input := "stop a\nexit\nstop b\n"
	ok, shouldExit := h.ProcessBatch(strings.NewReader(input))
	if !ok {
		t.Error("ProcessBatch should report success")
	}
	if !shouldExit {
		t.Error("ProcessBatch should report shouldExit after 'exit'")
	}
	if cmds.Len() != 1 {
		t.Errorf("queue length = %d, want 1 (only 'stop a' before exit)", cmds.Len())
	}
}

func TestUnknownCommandReturnsError(t *testing.T) {
	cmds := queue.New()
	h := New(cmds, &fakeTempo{})
	if err := h.ProcessCommand("frobnicate"); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}
