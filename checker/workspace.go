package checker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sfc-lang/tmpltc/diagnostics"
)

// Document is one open template document awaiting (re)validation: its
// logical path, its already-transformed synthetic source, and the stub
// module directory its shadow should be loaded against.
type Document struct {
	Path          string
	SynthSrc      string
	StubModuleDir string
}

// Result pairs a Document's diagnostics with its internal notices, keyed by
// Path so callers can correlate results back to the documents they sent in.
type Result struct {
	Path    string
	Diags   []diagnostics.Raw
	Notices []string
	Err     error
}

// ValidateWorkspace revalidates many documents concurrently, the
// workspace-wide elaboration of §5's per-request model — generalizing the
// teacher's raw sync.WaitGroup worker pool (see validator.go's
// processTemplateFilesConcurrently) to a cancellation-aware errgroup, since
// any single document's load failure should not block the others from
// completing. Each call gets its own scope and source map upstream (in
// synth/sourcemap, built fresh per document by the caller); this function
// only guarantees there is no shared mutable state between the concurrent
// Validate calls themselves, beyond the Session's own internal locking.
func ValidateWorkspace(ctx context.Context, s *Session, docs []Document) []Result {
	results := make([]Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(runtime.NumCPU(), 1))
	for i, doc := range docs {
		g.Go(func() error {
			diags, notices, err := Validate(gctx, s, doc.Path, doc.SynthSrc, doc.StubModuleDir)
			results[i] = Result{Path: doc.Path, Diags: diags, Notices: notices, Err: err}
			return nil // a single document's error never cancels its siblings
		})
	}
	_ = g.Wait()
	return results
}
