package scope

import "github.com/sfc-lang/tmpltc/template"

// Binder collects the names a pattern (an iteration binder, a closure
// parameter, or a nested destructuring element) introduces into scope.
type Binder interface {
	Names() []string
}

// patternBinder adapts a template.Pattern to Binder, implementing the
// §4.1 pattern-binder table:
//
//	plain identifier `x`             -> {x}
//	object pattern `{a, b: c, ...r}`  -> union of binders, `b: c` introduces c
//	array pattern `[a, , b]`          -> union of present-element binders
//	default-value patterns           -> unchanged binder set (no Default field
//	                                     here: the parser drops `= expr` before
//	                                     building the Pattern)
type patternBinder struct {
	p *template.Pattern
}

// PatternBinder wraps a parsed pattern as a Binder.
func PatternBinder(p *template.Pattern) Binder {
	return patternBinder{p: p}
}

func (b patternBinder) Names() []string {
	return namesOf(b.p)
}

func namesOf(p *template.Pattern) []string {
	if p == nil {
		return nil
	}
	switch p.Kind {
	case template.PatternIdent:
		return []string{p.Name}
	case template.PatternObject:
		var names []string
		for _, el := range p.Elements {
			if el == nil {
				continue
			}
			// A `b: c` entry introduces `c` (el.Name), not `b` (el.Source).
			names = append(names, el.Name)
		}
		if p.HasRest && p.Rest != "" {
			names = append(names, p.Rest)
		}
		return names
	case template.PatternArray:
		var names []string
		for _, el := range p.Elements {
			if el == nil {
				continue // absent element, e.g. the hole in `[a, , b]`
			}
			names = append(names, namesOf(el)...)
		}
		return names
	default:
		return nil
	}
}
