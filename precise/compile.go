package precise

import (
	"math"

	"github.com/iltempo/interplay/duration"
	"github.com/iltempo/interplay/pattern"
)

// Compile turns a Pattern into a PreciseSchedule for the given sample
// rate and tempo (quarter notes per minute, 240 = seconds-per-bar
// factor for a 4/4 bar). The schedule carries its own active-voice and
// future-event state; recompiling on a tempo change means building a
// fresh PreciseSchedule and discarding the old one's event map (but
// callers are responsible for migrating ActiveVoices across the swap
// if they want held notes to keep ringing, see coordinator).
func Compile(p pattern.Pattern, sampleRate float64, tempo float64, playing bool) *PreciseSchedule {
	samplesPerBar := int64(math.Round(sampleRate * 240 / tempo))

	s := &PreciseSchedule{
		eventsByOffset: make(map[int64][]scheduledEvent),
		Playing:        playing,
		ActiveVoices:   make(map[VoiceKey]int64),
		FutureEvents:   make(map[int64][]PreciseEvent),
	}

	if len(p.Events) == 0 {
		s.LengthSamples = samplesPerBar
		s.Playing = false
		return s
	}

	patternLengthSamples := p.LengthBars.Num * samplesPerBar / p.LengthBars.Den
	s.LengthSamples = patternLengthSamples

	durs := make([]duration.Duration, len(p.Events))
	for i, ev := range p.Events {
		durs[i] = ev.Dur
	}
	l := duration.LCMOfDenominators(durs)

	tick := patternLengthSamples / l
	remainder := patternLengthSamples % l
	count := int64(len(p.Events))
	extraBase := remainder / count
	extraRemainder := remainder % count

	offset := int64(0)
	for i, ev := range p.Events {
		normalizedNum := ev.Dur.Num * (l / ev.Dur.Den)
		extra := extraBase
		if int64(i) < extraRemainder {
			extra++
		}
		eventLength := normalizedNum*tick + extra

		switch ev.Action.Kind {
		case pattern.ActionNote:
			s.place(offset, scheduledEvent{
				kind:              scheduledNoteOn,
				channel:           p.Channel,
				note:              ev.Action.Note.Pitch,
				velocity:          ev.Action.Note.Velocity,
				noteLengthSamples: noteLengthSamples(ev.Action.Note.Dur, eventLength),
			})

		case pattern.ActionChord:
			for _, n := range ev.Action.Chord {
				s.place(offset, scheduledEvent{
					kind:              scheduledNoteOn,
					channel:           p.Channel,
					note:              n.Pitch,
					velocity:          n.Velocity,
					noteLengthSamples: noteLengthSamples(n.Dur, eventLength),
				})
			}

		case pattern.ActionCtrl:
			s.place(offset, scheduledEvent{
				kind:    scheduledCtrl,
				channel: p.Channel,
				cc:      ev.Action.Ctrl.CC,
				value:   ev.Action.Ctrl.Value,
			})

		case pattern.ActionRest:
			// No scheduled entry: a rest just advances offset.
		}

		offset += eventLength
	}

	return s
}

func noteLengthSamples(noteDur duration.Duration, eventLength int64) int64 {
	return noteDur.Num * eventLength / noteDur.Den
}

func (s *PreciseSchedule) place(offset int64, e scheduledEvent) {
	s.eventsByOffset[offset] = append(s.eventsByOffset[offset], e)
}
