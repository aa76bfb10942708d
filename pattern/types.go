// Package pattern implements the textual pattern DSL: lexer, parser,
// desugar pass, and lowering to a flat event list, as described by the
// pattern language component of the sequencer core.
package pattern

import "github.com/iltempo/interplay/duration"

// ScalePitch is the sentinel pitch class for a scale-relative note (the
// `S` letter), resolved later by the transform layer's scale coercion.
const ScalePitch = 130

// DefaultVelocity is used when a note carries no explicit velocity letter.
const DefaultVelocity = 0.8

// DefaultOctave is used when a note carries no explicit octave digit.
const DefaultOctave = 3

// DefaultNoteDur is the sounded fraction every parsed note starts with,
// before Tie processing during lowering extends the enclosing event.
var DefaultNoteDur = duration.MustNew(1, 2)

// Note is a single pitched event.
type Note struct {
	Pitch    int // 0..127, or ScalePitch (130) for an unresolved scale-relative pitch
	Velocity float64
	Dur      duration.Duration // sounded fraction of the enclosing event
}

// ControlChange is a MIDI control-change value pair.
type ControlChange struct {
	CC    int
	Value float64
}

// ActionKind discriminates EventAction's variants.
type ActionKind int

const (
	ActionRest ActionKind = iota
	ActionNote
	ActionChord
	ActionCtrl
)

// EventAction is the tagged payload of an Event.
type EventAction struct {
	Kind  ActionKind
	Note  Note     // valid when Kind == ActionNote
	Chord []Note   // valid when Kind == ActionChord
	Ctrl  ControlChange // valid when Kind == ActionCtrl
}

// Event is one slot of a pattern: an action occupying a fraction of the
// pattern's total duration.
type Event struct {
	Action EventAction
	Dur    duration.Duration // fraction of the pattern's total duration
}

// Pattern is a compiled, flat event sequence ready for the scheduler.
type Pattern struct {
	Channel    int // 1..16, 1-based at this boundary
	Events     []Event
	LengthBars duration.Duration // > 0
}

// NamedPattern pairs a Pattern with the registry key it's started under.
type NamedPattern struct {
	Pattern
	Name string
}

// ElementKind discriminates Element's variants.
type ElementKind int

const (
	ElemNote ElementKind = iota
	ElemRest
	ElemTie
	ElemGroup
	ElemAlternation
)

// Element is a parse-tree node, consumed by Lower.
type Element struct {
	Kind     ElementKind
	Note     Note      // valid when Kind == ElemNote
	Children []Element // valid when Kind == ElemGroup
	Anchor   *Element  // valid when Kind == ElemAlternation
	Branches []Element // valid when Kind == ElemAlternation
}
