// Package midi wraps the physical MIDI output port and translates
// scheduler events onto it.
package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // auto-register RtMIDI driver

	"github.com/iltempo/interplay/precise"
)

// Output represents a MIDI output connection
type Output struct {
	port drivers.Out
	send func(msg midi.Message) error
}

// ListPorts returns a list of available MIDI output port names
func ListPorts() ([]string, error) {
	ports := midi.GetOutPorts()
	names := make([]string, len(ports))
	for i, port := range ports {
		names[i] = port.String()
	}
	return names, nil
}

// Open opens a MIDI output port by index
func Open(portIndex int) (*Output, error) {
	port, err := midi.OutPort(portIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get MIDI port %d: %w", portIndex, err)
	}

	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}

	return &Output{
		port: port,
		send: send,
	}, nil
}

// Close closes the MIDI output port
func (o *Output) Close() error {
	return o.port.Close()
}

// NoteOn sends a MIDI Note On message
// note: MIDI note number (0-127, where C4=60)
// velocity: note velocity (0-127)
// channel: MIDI channel (0-15, where 0 = channel 1)
func (o *Output) NoteOn(channel, note, velocity uint8) error {
	return o.send(midi.NoteOn(channel, note, velocity))
}

// NoteOff sends a MIDI Note Off message
func (o *Output) NoteOff(channel, note uint8) error {
	return o.send(midi.NoteOff(channel, note))
}

// ControlChange sends a MIDI CC message.
func (o *Output) ControlChange(channel, cc, value uint8) error {
	return o.send(midi.ControlChange(channel, cc, value))
}

// Send translates one scheduler event into its MIDI wire message.
// VoiceTerminated is scheduler-internal bookkeeping with no wire
// representation, so it's a no-op here.
func (o *Output) Send(ev precise.PreciseEvent) error {
	channel := uint8(wireChannel(ev.Channel))

	switch ev.Kind {
	case precise.KindNoteOn:
		return o.NoteOn(channel, uint8(ev.Note), uint8(ev.Velocity*127))
	case precise.KindNoteOff:
		return o.NoteOff(channel, uint8(ev.Note))
	case precise.KindCtrl:
		return o.ControlChange(channel, uint8(ev.CC), uint8(ev.Value*127))
	case precise.KindVoiceTerminated:
		return nil
	default:
		return fmt.Errorf("midi: unknown event kind %d", ev.Kind)
	}
}

// wireChannel maps the pattern model's 1-based channel onto the 0-based
// wire channel gomidi expects.
func wireChannel(channel int) int {
	c := channel - 1
	if c < 0 {
		return 0
	}
	if c > 15 {
		return 15
	}
	return c
}
