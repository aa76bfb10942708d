package precise

// Start marks the schedule as playing; GetEvents returns nothing while
// a schedule isn't playing.
func (s *PreciseSchedule) Start() {
	s.Playing = true
}

// Stop drains every active voice (returning their note-offs), discards
// any pending future note-offs, and marks the schedule stopped.
func (s *PreciseSchedule) Stop() []PreciseEvent {
	events := s.DrainActiveVoices()
	s.Playing = false
	s.FutureEvents = make(map[int64][]PreciseEvent)
	return events
}

// DrainActiveVoices returns one NoteOff, timed at 0, for every currently
// active voice, and clears ActiveVoices. Used directly by Stop, and by
// pattern replacement/clear so a swapped-out pattern doesn't leave held
// notes ringing.
func (s *PreciseSchedule) DrainActiveVoices() []PreciseEvent {
	out := make([]PreciseEvent, 0, len(s.ActiveVoices))
	for key, voiceID := range s.ActiveVoices {
		out = append(out, PreciseEvent{Kind: KindNoteOff, VoiceID: voiceID, Channel: key.Channel, Note: key.Note})
	}
	s.ActiveVoices = make(map[VoiceKey]int64)
	return out
}
