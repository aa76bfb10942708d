// Package transport exposes the command queue over HTTP, matching the
// external control surface's method/path table. Incoming pattern
// bodies are parsed leniently with gjson (network input, unlike the
// teacher's on-disk persistence, should tolerate partial or oddly
// ordered JSON); the GET /patterns body is built with sjson rather than
// string concatenation, and the other routes reply with plain text.
package transport

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iltempo/interplay/duration"
	"github.com/iltempo/interplay/pattern"
)

// decodePattern parses a JSON pattern body: {"channel": int, "events":
// [...], "length_bars": {"num","den"}}. Each event is {"action":
// <tagged>, "dur": {"num","den"}}; action is either the string "Rest"
// or a single-key object naming "NoteEvent", "MultiNoteEvent", or "Ctrl".
func decodePattern(body []byte) (pattern.Pattern, error) {
	root := gjson.ParseBytes(body)
	if !root.Exists() {
		return pattern.Pattern{}, fmt.Errorf("transport: empty or invalid JSON body")
	}

	channel := int(root.Get("channel").Int())
	lengthBars, err := decodeDuration(root.Get("length_bars"))
	if err != nil {
		return pattern.Pattern{}, fmt.Errorf("transport: length_bars: %w", err)
	}

	var events []pattern.Event
	var decodeErr error
	root.Get("events").ForEach(func(_, ev gjson.Result) bool {
		e, err := decodeEvent(ev)
		if err != nil {
			decodeErr = err
			return false
		}
		events = append(events, e)
		return true
	})
	if decodeErr != nil {
		return pattern.Pattern{}, decodeErr
	}

	return pattern.Pattern{Channel: channel, Events: events, LengthBars: lengthBars}, nil
}

func decodeDuration(r gjson.Result) (duration.Duration, error) {
	if !r.Exists() {
		return duration.Duration{}, fmt.Errorf("missing num/den object")
	}
	return duration.New(r.Get("num").Int(), r.Get("den").Int())
}

func decodeEvent(ev gjson.Result) (pattern.Event, error) {
	dur, err := decodeDuration(ev.Get("dur"))
	if err != nil {
		return pattern.Event{}, fmt.Errorf("event dur: %w", err)
	}

	action := ev.Get("action")
	if action.Type == gjson.String && action.String() == "Rest" {
		return pattern.Event{Dur: dur, Action: pattern.EventAction{Kind: pattern.ActionRest}}, nil
	}

	var result pattern.EventAction
	var decodeErr error
	action.ForEach(func(key, val gjson.Result) bool {
		switch key.String() {
		case "NoteEvent":
			n, err := decodeNote(val)
			if err != nil {
				decodeErr = err
				return false
			}
			result = pattern.EventAction{Kind: pattern.ActionNote, Note: n}

		case "MultiNoteEvent":
			var chord []pattern.Note
			val.ForEach(func(_, noteVal gjson.Result) bool {
				n, err := decodeNote(noteVal)
				if err != nil {
					decodeErr = err
					return false
				}
				chord = append(chord, n)
				return true
			})
			result = pattern.EventAction{Kind: pattern.ActionChord, Chord: chord}

		case "Ctrl":
			result = pattern.EventAction{Kind: pattern.ActionCtrl, Ctrl: pattern.ControlChange{
				CC:    int(val.Get("cc").Int()),
				Value: val.Get("value").Float(),
			}}

		default:
			decodeErr = fmt.Errorf("unknown action variant %q", key.String())
			return false
		}
		return true
	})
	if decodeErr != nil {
		return pattern.Event{}, decodeErr
	}
	if !action.Exists() {
		return pattern.Event{}, fmt.Errorf("event missing action")
	}

	return pattern.Event{Dur: dur, Action: result}, nil
}

func decodeNote(r gjson.Result) (pattern.Note, error) {
	noteDur, err := decodeDuration(r.Get("dur"))
	if err != nil {
		return pattern.Note{}, fmt.Errorf("note dur: %w", err)
	}
	return pattern.Note{
		Pitch:    int(r.Get("pitch").Int()),
		Velocity: r.Get("velocity").Float(),
		Dur:      noteDur,
	}, nil
}

// encodePatternNames builds the GET /patterns body: a JSON object whose
// "patterns" key holds the names as an array ("{}" when there are none).
func encodePatternNames(names []string) string {
	body := "{}"
	var err error
	for i, name := range names {
		body, err = sjson.Set(body, fmt.Sprintf("patterns.%d", i), name)
		if err != nil {
			return "{}"
		}
	}
	return body
}
