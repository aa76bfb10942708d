package precise

import "sort"

// windowSegment is a contiguous slice of pattern offsets to scan,
// together with the buffer-timing offset its first sample maps to.
type windowSegment struct {
	from, to   int64 // pattern-relative, [from, to)
	timingBase int64 // buffer-local timing of pattern offset `from`
}

// GetEvents returns every event due in the buffer [songPos, songPos+bufSize),
// ordered so that an outgoing voice's note-off/voice-terminated is emitted
// before any new note-on landing at the same buffer offset.
func (s *PreciseSchedule) GetEvents(songPos, bufSize int64) []PreciseEvent {
	if !s.Playing || s.LengthSamples <= 0 {
		return nil
	}

	segments := s.windowSegments(songPos, bufSize)

	var newEvents []PreciseEvent
	for _, seg := range segments {
		for offset := seg.from; offset < seg.to; offset++ {
			entries, ok := s.eventsByOffset[offset]
			if !ok {
				continue
			}
			timing := seg.timingBase + (offset - seg.from)
			for _, e := range entries {
				newEvents = append(newEvents, s.emit(e, songPos, timing))
			}
		}
	}

	drained := s.drainFutureEvents(songPos, bufSize)

	return mergeOrdered(drained, newEvents)
}

// windowSegments maps [songPos, songPos+bufSize) onto the pattern's
// [0, LengthSamples) cycle, splitting into two segments when the window
// wraps past the end of the pattern.
func (s *PreciseSchedule) windowSegments(songPos, bufSize int64) []windowSegment {
	length := s.LengthSamples
	start := floorMod(songPos, length)
	end := start + bufSize

	if end <= length {
		return []windowSegment{{from: start, to: end, timingBase: 0}}
	}

	firstLen := length - start
	return []windowSegment{
		{from: start, to: length, timingBase: 0},
		{from: 0, to: end - length, timingBase: firstLen},
	}
}

func floorMod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// emit turns a pre-placed scheduled entry into its PreciseEvent, assigning
// a fresh voice id for note-ons and scheduling their matching future
// note-off/voice-terminated pair.
func (s *PreciseSchedule) emit(e scheduledEvent, songPos, timing int64) PreciseEvent {
	switch e.kind {
	case scheduledCtrl:
		return PreciseEvent{Kind: KindCtrl, TimingInBuffer: timing, Channel: e.channel, CC: e.cc, Value: e.value}

	default: // scheduledNoteOn
		voiceID := s.nextVoiceID
		s.nextVoiceID++
		key := VoiceKey{Channel: e.channel, Note: e.note}
		s.ActiveVoices[key] = voiceID

		offAt := songPos + timing + e.noteLengthSamples
		s.FutureEvents[offAt] = append(s.FutureEvents[offAt],
			PreciseEvent{Kind: KindNoteOff, VoiceID: voiceID, Channel: e.channel, Note: e.note},
			PreciseEvent{Kind: KindVoiceTerminated, VoiceID: voiceID, Channel: e.channel, Note: e.note},
		)

		return PreciseEvent{
			Kind: KindNoteOn, TimingInBuffer: timing, VoiceID: voiceID,
			Channel: e.channel, Note: e.note, Velocity: e.velocity,
			NoteLengthSamples: e.noteLengthSamples,
		}
	}
}

// drainFutureEvents removes and returns every future event whose
// song-absolute key falls within [songPos, songPos+bufSize), stamping
// each with its buffer-local timing. It also clears the corresponding
// ActiveVoices entry, unless a newer voice has already replaced it.
func (s *PreciseSchedule) drainFutureEvents(songPos, bufSize int64) []PreciseEvent {
	var out []PreciseEvent
	for key, events := range s.FutureEvents {
		if key < songPos || key >= songPos+bufSize {
			continue
		}
		timing := key - songPos
		for _, e := range events {
			e.TimingInBuffer = timing
			out = append(out, e)
			if e.Kind == KindNoteOff {
				vk := VoiceKey{Channel: e.Channel, Note: e.Note}
				if s.ActiveVoices[vk] == e.VoiceID {
					delete(s.ActiveVoices, vk)
				}
			}
		}
		delete(s.FutureEvents, key)
	}
	return out
}

// mergeOrdered stable-sorts drained (outgoing) and fresh (incoming)
// events by buffer timing, with drained events breaking ties first so
// an outgoing voice's note-off precedes an incoming replacement note-on
// at the same offset.
func mergeOrdered(drained, fresh []PreciseEvent) []PreciseEvent {
	type tagged struct {
		ev       PreciseEvent
		tiebreak int
		order    int
	}
	all := make([]tagged, 0, len(drained)+len(fresh))
	for i, e := range drained {
		all = append(all, tagged{ev: e, tiebreak: 0, order: i})
	}
	for i, e := range fresh {
		all = append(all, tagged{ev: e, tiebreak: 1, order: i})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].ev.TimingInBuffer != all[j].ev.TimingInBuffer {
			return all[i].ev.TimingInBuffer < all[j].ev.TimingInBuffer
		}
		if all[i].tiebreak != all[j].tiebreak {
			return all[i].tiebreak < all[j].tiebreak
		}
		return all[i].order < all[j].order
	})

	out := make([]PreciseEvent, len(all))
	for i, t := range all {
		out[i] = t.ev
	}
	return out
}
