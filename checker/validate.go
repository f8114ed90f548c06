package checker

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sfc-lang/tmpltc/diagnostics"
)

// shadowSuffix names the synthetic document go/packages is told about,
// alongside the template's own logical path (spec §5: "same logical path
// with a suffix").
const shadowSuffix = ".tmplshadow.go"

// ShadowPath derives the overlay filename for a template at path.
func ShadowPath(path string) string {
	return path + shadowSuffix
}

// Validate implements spec §5's per-request contract: build an overlay
// exposing synthSrc as path's shadow document, load it against stubModuleDir
// with NeedSyntax|NeedTypes|NeedTypesInfo|NeedDeps, and classify every
// reported error by its packages.Error.Kind. ctx is checked for
// cancellation at both of §5's yield points — immediately on entry (the
// boundary between the transform that already ran and the load about to
// start) and again after Load returns (the boundary between load and
// mapping) — returning ctx.Err() instead of a result if either fires.
func Validate(ctx context.Context, s *Session, path, synthSrc, stubModuleDir string) ([]diagnostics.Raw, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	absStubModuleDir, err := filepath.Abs(stubModuleDir)
	if err != nil {
		return nil, nil, fmt.Errorf("checker: resolve stub module dir: %w", err)
	}
	shadowPath := filepath.Join(absStubModuleDir, filepath.Base(ShadowPath(path)))

	if diags, notices, ok := s.lookup(stubModuleDir, shadowPath, synthSrc); ok {
		return diags, notices, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps,
		Dir:  stubModuleDir,
		Overlay: map[string][]byte{
			shadowPath: []byte(synthSrc),
		},
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "file="+shadowPath)
	if err != nil {
		return nil, nil, fmt.Errorf("checker: load shadow package: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var diags []diagnostics.Raw
	var notices []string
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			kind := classify(pkgErr)
			if kind != diagnostics.KindSemantic {
				notices = append(notices, fmt.Sprintf("dropped non-semantic diagnostic: %v", pkgErr))
				continue
			}
			span := errorSpan(synthSrc, pkgErr, shadowPath)
			diags = append(diags, diagnostics.Raw{
				Span:    span,
				Kind:    kind,
				Message: pkgErr.Msg,
				Code:    codeOf(pkgErr),
			})
		}
	}

	s.store(stubModuleDir, shadowPath, synthSrc, diags, notices)
	return diags, notices, nil
}

// classify maps packages.Error.Kind onto diagnostics.Kind per spec §4.4's
// policy: only genuine type errors are semantic. ParseError never happens
// in practice (the synthetic program is syntactically valid by
// construction) but is classified explicitly rather than falling through,
// since a syntax error here indicates an internal transform bug, not user
// error, and must never reach the editor as a template diagnostic.
func classify(e packages.Error) diagnostics.Kind {
	switch e.Kind {
	case packages.TypeError:
		return diagnostics.KindSemantic
	case packages.ParseError:
		return diagnostics.KindSyntactic
	default:
		return diagnostics.KindOther
	}
}

func codeOf(e packages.Error) string {
	if e.Kind == packages.TypeError {
		return "type-error"
	}
	return "" // never surfaced: non-semantic kinds are dropped before Code is read
}

// errorSpan recovers a byte offset into synthSrc from a packages.Error's
// "file:line:col" position string. go/packages reports positions as plain
// text, not token.Pos, so the line/column pair is resolved against the
// overlay text we already hold rather than re-deriving a token.FileSet.
func errorSpan(synthSrc string, e packages.Error, shadowPath string) diagnostics.RawSpan {
	pos := e.Pos
	if !strings.HasPrefix(pos, shadowPath) {
		// Some errors (e.g. list-level) report no position or one outside
		// the shadow file; anchor at the very start, MapBack's own
		// sentinel handles the rest.
		return diagnostics.RawSpan{Start: 0, End: 0}
	}
	rest := strings.TrimPrefix(pos, shadowPath+":")
	fields := strings.SplitN(rest, ":", 2)
	line, col := 1, 1
	if len(fields) >= 1 {
		if v, err := strconv.Atoi(fields[0]); err == nil {
			line = v
		}
	}
	if len(fields) >= 2 {
		if v, err := strconv.Atoi(fields[1]); err == nil {
			col = v
		}
	}
	offset := offsetForLineCol(synthSrc, line, col)
	return diagnostics.RawSpan{Start: offset, End: offset}
}

// offsetForLineCol converts a 1-based (line, col) pair into a byte offset
// into src, the same overlay text the position was reported against.
func offsetForLineCol(src string, line, col int) int {
	currentLine := 1
	for i := 0; i < len(src); i++ {
		if currentLine == line {
			end := i + (col - 1)
			if end > len(src) {
				end = len(src)
			}
			return end
		}
		if src[i] == '\n' {
			currentLine++
		}
	}
	return len(src)
}
