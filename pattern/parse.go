package pattern

// frameKind tracks which delimiter a parseSequence call is waiting for,
// so running off the end of the tokens reports the right error.
type frameKind int

const (
	frameTop frameKind = iota
	frameGroup
	frameAltBranches
)

// Parse consumes a full (already-desugared) token stream into the root
// Group element. Recursive descent with explicit frames, per the
// grammar's group/alternation sub-parser rules.
func Parse(tokens []Token) (Element, error) {
	elems, pos, err := parseSequence(tokens, 0, frameTop)
	if err != nil {
		return Element{}, err
	}
	if pos != len(tokens) {
		// Should not happen: frameTop consumes to exhaustion or errors.
		return Element{}, newErr(ErrLexFailure, "unconsumed tokens after top-level parse")
	}
	return Element{Kind: ElemGroup, Children: elems}, nil
}

// parseSequence consumes tokens[pos:] as a sequence of elements,
// stopping when it finds the delimiter appropriate to frame (GroupEnd
// for frameGroup, AltEnd for frameAltBranches), or at end of input for
// frameTop. Returns the elements and the index just past the consumed
// tokens (including the closing delimiter, if any).
func parseSequence(tokens []Token, pos int, frame frameKind) ([]Element, int, error) {
	var seq []Element

	for pos < len(tokens) {
		tok := tokens[pos]

		switch tok.Kind {
		case TokGroupStart:
			children, next, err := parseSequence(tokens, pos+1, frameGroup)
			if err != nil {
				return nil, 0, err
			}
			seq = append(seq, Element{Kind: ElemGroup, Children: children})
			pos = next

		case TokGroupEnd:
			if frame == frameGroup {
				return seq, pos + 1, nil
			}
			if frame == frameTop {
				return nil, 0, newErr(ErrMissingGroupDelimiter, "unexpected ']' with no matching '['")
			}
			// frameAltBranches: a group-close can't satisfy an open alternation.
			return nil, 0, newErr(ErrMissingAlternationDelimiter, "unterminated alternation before ']'")

		case TokAltStart:
			if len(seq) == 0 {
				return nil, 0, newErr(ErrMissingAlternationAnchor, "'<' requires a preceding element to anchor it")
			}
			anchor := seq[len(seq)-1]
			branches, next, err := parseSequence(tokens, pos+1, frameAltBranches)
			if err != nil {
				return nil, 0, err
			}
			seq[len(seq)-1] = Element{Kind: ElemAlternation, Anchor: &anchor, Branches: branches}
			pos = next

		case TokAltEnd:
			if frame == frameAltBranches {
				return seq, pos + 1, nil
			}
			if frame == frameTop {
				return nil, 0, newErr(ErrMissingAlternationDelimiter, "unexpected '>' with no matching '<'")
			}
			// frameGroup: an alt-close can't satisfy an open group.
			return nil, 0, newErr(ErrMissingGroupDelimiter, "unterminated group before '>'")

		case TokRest:
			seq = append(seq, Element{Kind: ElemRest})
			pos++

		case TokTie:
			seq = append(seq, Element{Kind: ElemTie})
			pos++

		case TokNoteExpr:
			seq = append(seq, Element{Kind: ElemNote, Note: tok.Note})
			pos++

		default:
			// Compound tokens must have been expanded by Desugar before Parse runs.
			return nil, 0, newErr(ErrLexFailure, "unexpected compound token %v reached the parser undesugared", tok.Kind)
		}
	}

	switch frame {
	case frameGroup:
		return nil, 0, newErr(ErrMissingGroupDelimiter, "unterminated group: expected ']'")
	case frameAltBranches:
		return nil, 0, newErr(ErrMissingAlternationDelimiter, "unterminated alternation: expected '>'")
	default:
		return seq, pos, nil
	}
}
