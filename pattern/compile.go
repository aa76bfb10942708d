package pattern

import "github.com/iltempo/interplay/duration"

// Compile runs the full lex -> desugar -> parse -> lower pipeline,
// turning pattern text into a Pattern ready for the scheduler.
func Compile(text string, channel int, lengthBars duration.Duration) (Pattern, error) {
	tokens, err := Lex(text)
	if err != nil {
		return Pattern{}, err
	}

	tokens, err = Desugar(tokens)
	if err != nil {
		return Pattern{}, err
	}

	root, err := Parse(tokens)
	if err != nil {
		return Pattern{}, err
	}

	// Lower always normalizes event durations to a whole-cycle fraction
	// summing to 1, independent of lengthBars: LengthBars only scales
	// the schedule's sample length at compile time (see precise.Compile),
	// it does not rescale the events' own dimensionless share of the bar.
	events, err := Lower(root, duration.MustNew(1, 1))
	if err != nil {
		return Pattern{}, err
	}

	return Pattern{Channel: channel, Events: events, LengthBars: lengthBars}, nil
}
