package pattern

// Desugar rewrites a token stream, expanding compound repeat/tie tokens
// into the atomic tokens the parser understands. Idempotent: a stream
// with no NoteTie/NoteRepeat/NoteRepeatGrouped/RestTie/RestRepeat
// tokens is returned unchanged.
func Desugar(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Kind {
		case TokNoteTie:
			// note@n -> NoteExpr(note) followed by n-1 Tie tokens.
			// Spec's redesign note: accept ties >= 1 (off-by-one fix
			// relative to the surface syntax note@2).
			if tok.N < 1 {
				return nil, newErr(ErrInvalidDuration, "note tie count must be >= 1, got %d", tok.N)
			}
			out = append(out, Token{Kind: TokNoteExpr, Note: tok.Note})
			for k := 0; k < tok.N-1; k++ {
				out = append(out, Token{Kind: TokTie})
			}
		case TokNoteRepeat:
			for k := 0; k < tok.N; k++ {
				out = append(out, Token{Kind: TokNoteExpr, Note: tok.Note})
			}
		case TokNoteRepeatGrouped:
			out = append(out, Token{Kind: TokGroupStart})
			for k := 0; k < tok.N; k++ {
				out = append(out, Token{Kind: TokNoteExpr, Note: tok.Note})
			}
			out = append(out, Token{Kind: TokGroupEnd})
		case TokRestTie:
			// Desugared as n repeated rests, not n-1 ties onto a rest —
			// see the open question in spec §9: one source draft treats
			// this as extension instead of repetition; we match the
			// most recent test fixtures' "repeat" interpretation.
			for k := 0; k < tok.N; k++ {
				out = append(out, Token{Kind: TokRest})
			}
		case TokRestRepeat:
			for k := 0; k < tok.N; k++ {
				out = append(out, Token{Kind: TokRest})
			}
		default:
			out = append(out, tok)
		}
	}

	return out, nil
}
