// Command tmplcheck-demo runs the whole Template Interpolation Transform
// pipeline (synth.Transform -> synth.Program -> checker.Validate ->
// diagnostics.Map) over one of the fixture ASTs in fixtures.go and prints
// the resulting template-coordinate diagnostics as JSON. It mirrors the
// teacher's flag-based, JSON-to-stdout CLI shape (analyzer/main.go) but is
// not part of the core's external interface (spec.md §6: the core is an
// in-process library; this is a manual-inspection aid only).
package main

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/sfc-lang/tmpltc/checker"
	"github.com/sfc-lang/tmpltc/diagnostics"
	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/synth"
	"github.com/sfc-lang/tmpltc/template"
)

// Output is the JSON structure emitted for a single fixture run: the
// mapped diagnostics plus any internal notices (spec §7) recorded while
// transforming, useful for spotting an unsupported directive variant
// during manual inspection.
type Output struct {
	Fixture     string                   `json:"fixture"`
	Diagnostics []diagnostics.Diagnostic `json:"diagnostics"`
	Notices     []string                 `json:"notices,omitempty"`
	Synthetic   string                   `json:"synthetic,omitempty"`
}

func main() {
	fixture := flag.String("fixture", "missing-property", "name of the fixture template to check (see fixtures.go)")
	stubModule := flag.String("stub-module", "", "path to the ambient stub module directory (default: testdata/stubmodule relative to this command)")
	componentType := flag.String("component-type", "Component", "name of the ambient this-type the fixture is checked against")
	showSynthetic := flag.Bool("show-synthetic", false, "include the generated Go source in the output")
	compress := flag.Bool("compress", false, "write gzip-compressed JSON")
	flag.Parse()

	build, ok := fixtures[*fixture]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fixture %q; known fixtures: %s\n", *fixture, knownFixtureNames())
		os.Exit(1)
	}

	stubDir := *stubModule
	if stubDir == "" {
		stubDir = defaultStubModuleDir()
	}

	out, err := run(*fixture, build(), stubDir, *componentType, *showSynthetic)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tmplcheck-demo:", err)
		os.Exit(1)
	}
	encodeJSON(out, *compress)
}

// run drives the full pipeline for one fixture: Transform each root child,
// assemble the synthetic program, request diagnostics from the downstream
// type checker, and map them back to template coordinates — the data flow
// spec.md §2 describes end to end.
func run(name string, children []template.Node, stubDir, componentType string, showSynthetic bool) (Output, error) {
	var notices []string
	tr := synth.NewTransformer(&notices)
	pieces := tr.TransformRoot(children, scope.Root())

	src, sm := synth.Program(componentType, pieces)

	fixturePath := filepath.Join(stubDir, "fixture.tmpl")
	sess := checker.NewSession()
	raws, checkerNotices, err := checker.Validate(context.Background(), sess, fixturePath, src, stubDir)
	if err != nil {
		return Output{}, fmt.Errorf("validate: %w", err)
	}
	notices = append(notices, checkerNotices...)

	out := Output{Fixture: name, Diagnostics: diagnostics.Map(raws, sm), Notices: notices}
	if showSynthetic {
		out.Synthetic = src
	}
	return out, nil
}

func knownFixtureNames() string {
	names := make([]string, 0, len(fixtures))
	for n := range fixtures {
		names = append(names, n)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// defaultStubModuleDir resolves testdata/stubmodule relative to this
// source file's own directory, so the demo works regardless of the
// caller's working directory.
func defaultStubModuleDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "stubmodule")
}

func encodeJSON(v any, compress bool) {
	if compress {
		gz := gzip.NewWriter(os.Stdout)
		defer gz.Close()
		enc := json.NewEncoder(gz)
		if err := enc.Encode(v); err != nil {
			fmt.Fprintln(os.Stderr, "encode:", err)
			os.Exit(1)
		}
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
