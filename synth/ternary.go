package synth

import "github.com/sfc-lang/tmpltc/scope"

// splitTernary looks for a top-level (bracket-depth 0, outside string/rune
// literals) `? :` in raw. Go has no ternary expression syntax, so this is a
// small pre-parse step that recognizes the spec's illustrative `cond ? a : b`
// directive-value shape before handing anything to go/parser.
func splitTernary(raw string) (cond, a, b string, ok bool) {
	depth := 0
	qIdx := -1
	inString := byte(0)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inString != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == inString {
				inString = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			inString = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '?':
			if depth == 0 && qIdx == -1 {
				qIdx = i
			}
		}
	}
	if qIdx == -1 {
		return "", "", "", false
	}

	depth = 0
	inString = 0
	colonIdx := -1
	for i := qIdx + 1; i < len(raw); i++ {
		c := raw[i]
		if inString != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == inString {
				inString = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			inString = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 {
				colonIdx = i
			}
		}
		if colonIdx != -1 {
			break
		}
	}
	if colonIdx == -1 {
		return "", "", "", false
	}
	return raw[:qIdx], raw[qIdx+1 : colonIdx], raw[colonIdx+1:], true
}

// rewriteTernary expands `cond ? a : b` into an immediately invoked closure
// so both branches are independently type-checked, per SPEC_FULL.md §0.
func (p *Parser) rewriteTernary(raw, cond, a, b string, sc scope.Scope, offset int) Piece {
	condOff := offset
	aOff := offset + len(cond) + 1
	bOff := aOff + len(a) + 1

	condPiece := p.ParseExpr(cond, sc, condOff)
	aPiece := p.ParseExpr(a, sc, aOff)
	bPiece := p.ParseExpr(b, sc, bOff)

	return Concat(
		Lit("func() any { if "), condPiece, Lit(" { return "), aPiece,
		Lit(" }\nreturn "), bPiece, Lit(" }()"),
	)
}
