package pattern

import "github.com/iltempo/interplay/duration"

// Lower distributes totalDuration across an element tree, producing the
// flat event list the scheduler compiles. Ties extend the immediately
// preceding event; groups subdivide their share evenly across children;
// alternations are expanded into an interleaved flat group first.
func Lower(root Element, totalDuration duration.Duration) ([]Event, error) {
	var events []Event
	if err := lowerInto(&events, root, totalDuration); err != nil {
		return nil, err
	}
	return events, nil
}

func lowerInto(events *[]Event, el Element, dur duration.Duration) error {
	switch el.Kind {
	case ElemNote:
		*events = append(*events, Event{Action: EventAction{Kind: ActionNote, Note: el.Note}, Dur: dur})

	case ElemRest:
		*events = append(*events, Event{Action: EventAction{Kind: ActionRest}, Dur: dur})

	case ElemTie:
		if len(*events) == 0 {
			return newErr(ErrInvalidDuration, "tie with no preceding event to extend")
		}
		last := &(*events)[len(*events)-1]
		last.Dur = last.Dur.Add(dur)

	case ElemGroup:
		k := int64(len(el.Children))
		if k == 0 {
			return nil
		}
		share := dur.Subdivide(k)
		for _, child := range el.Children {
			if err := lowerInto(events, child, share); err != nil {
				return err
			}
		}

	case ElemAlternation:
		if el.Anchor == nil {
			return newErr(ErrMissingAlternationAnchor, "alternation element has no anchor")
		}
		flat := expandAlternation(*el.Anchor, el.Branches)
		return lowerInto(events, Element{Kind: ElemGroup, Children: flat}, dur)

	default:
		return newErr(ErrLexFailure, "unknown element kind %d during lowering", el.Kind)
	}

	return nil
}

// expandAlternation interleaves anchor with each branch: [anchor, b1,
// anchor, b2, ...]. A branch that is itself an Alternation is expanded
// first using its own inner anchor, and every element of that expansion
// is individually paired with the outer anchor.
func expandAlternation(anchor Element, branches []Element) []Element {
	var out []Element
	for _, b := range branches {
		if b.Kind == ElemAlternation && b.Anchor != nil {
			inner := expandAlternation(*b.Anchor, b.Branches)
			for _, e := range inner {
				out = append(out, anchor, e)
			}
		} else {
			out = append(out, anchor, b)
		}
	}
	return out
}
