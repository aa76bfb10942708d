// Package transform implements pattern-level transforms consumed by
// external scripting: transpose, reverse, stretch, and scale
// coercion. Every transform returns a new Pattern; none mutate the one
// passed in, matching the value-semantics the pattern package already
// uses for Events.
package transform

import (
	"github.com/iltempo/interplay/duration"
	"github.com/iltempo/interplay/pattern"
)

// Transpose shifts every concrete note pitch by semitones, clamped to
// the valid MIDI range. Scale-relative pitches (the unresolved S
// sentinel) are left untouched — transpose applies after coercion.
func Transpose(p pattern.Pattern, semitones int) pattern.Pattern {
	out := clone(p)
	for i := range out.Events {
		transposeAction(&out.Events[i].Action, semitones)
	}
	return out
}

func transposeAction(a *pattern.EventAction, semitones int) {
	switch a.Kind {
	case pattern.ActionNote:
		if a.Note.Pitch != pattern.ScalePitch {
			a.Note.Pitch = clampPitch(a.Note.Pitch + semitones)
		}
	case pattern.ActionChord:
		for i := range a.Chord {
			if a.Chord[i].Pitch != pattern.ScalePitch {
				a.Chord[i].Pitch = clampPitch(a.Chord[i].Pitch + semitones)
			}
		}
	}
}

func clampPitch(p int) int {
	if p < 0 {
		return 0
	}
	if p > 127 {
		return 127
	}
	return p
}

// Reverse flips the order of a pattern's events. Each event keeps its
// own duration, so total duration and per-event sounded fractions are
// unaffected — only playback order changes.
func Reverse(p pattern.Pattern) pattern.Pattern {
	out := clone(p)
	n := len(out.Events)
	for i := 0; i < n/2; i++ {
		out.Events[i], out.Events[n-1-i] = out.Events[n-1-i], out.Events[i]
	}
	return out
}

// Stretch scales the pattern's overall length by factor while leaving
// every event's fractional share of the pattern unchanged — a 2/1
// factor plays the same sequence over twice as many bars.
func Stretch(p pattern.Pattern, factor duration.Duration) pattern.Pattern {
	out := clone(p)
	out.LengthBars = out.LengthBars.Mul(factor)
	return out
}

// CoerceToScale resolves every scale-relative note (pitch == ScalePitch)
// to a concrete pitch: the Nth scale-relative note in the pattern maps
// to the Nth scale degree (wrapping around the scale's pitch classes,
// climbing an octave every full wrap), anchored at root.
func CoerceToScale(p pattern.Pattern, s Scale, root int) pattern.Pattern {
	out := clone(p)
	degree := 0
	for i := range out.Events {
		coerceAction(&out.Events[i].Action, s, root, &degree)
	}
	return out
}

func coerceAction(a *pattern.EventAction, s Scale, root int, degree *int) {
	switch a.Kind {
	case pattern.ActionNote:
		if a.Note.Pitch == pattern.ScalePitch {
			a.Note.Pitch = resolveDegree(s, root, degree)
		}
	case pattern.ActionChord:
		for i := range a.Chord {
			if a.Chord[i].Pitch == pattern.ScalePitch {
				a.Chord[i].Pitch = resolveDegree(s, root, degree)
			}
		}
	}
}

func resolveDegree(s Scale, root int, degree *int) int {
	if len(s.PitchClasses) == 0 {
		return clampPitch(root)
	}
	octave := *degree / len(s.PitchClasses)
	class := s.PitchClasses[*degree%len(s.PitchClasses)]
	*degree++
	return clampPitch(root + class + octave*12)
}

func clone(p pattern.Pattern) pattern.Pattern {
	events := make([]pattern.Event, len(p.Events))
	copy(events, p.Events)
	for i, ev := range p.Events {
		if ev.Action.Kind == pattern.ActionChord {
			chord := make([]pattern.Note, len(ev.Action.Chord))
			copy(chord, ev.Action.Chord)
			events[i].Action.Chord = chord
		}
	}
	return pattern.Pattern{Channel: p.Channel, Events: events, LengthBars: p.LengthBars}
}
