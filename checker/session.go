// Package checker implements the Concurrency & Resource Model (spec §5): a
// long-lived session that hands the synthetic program to go/packages as an
// in-memory overlay over a stub Go module, and turns the semantic errors it
// reports into diagnostics.Raw values ready for sourcemap.MapBack.
package checker

import (
	"sync"

	"github.com/sfc-lang/tmpltc/diagnostics"
)

// Session is a long-lived, path-keyed cache, analogous to the teacher's
// package-directory cache (ast.packageCache in the original analyzer) but
// keyed by stub module directory and memoizing the last validated shadow
// source rather than caching across directory contents: a validation
// request whose synthetic source is byte-identical to the last one seen
// for that module skips go/packages entirely.
type Session struct {
	mu      sync.Mutex
	entries map[string]cacheEntry // keyed by stub module directory
}

type cacheEntry struct {
	shadowPath string
	src        string
	diags      []diagnostics.Raw
	notices    []string
}

// NewSession returns an empty Session.
func NewSession() *Session {
	return &Session{entries: make(map[string]cacheEntry)}
}

// Forget evicts a stub module's cached entry, forcing the next Validate
// call against it to reload from disk. Call this when the stub module's own
// non-template sources change (the shadow document's dependencies shifted
// under it) — a byte-identical shadow source no longer implies an
// up-to-date result.
func (s *Session) Forget(stubModuleDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, stubModuleDir)
}

func (s *Session) lookup(stubModuleDir, shadowPath, src string) ([]diagnostics.Raw, []string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[stubModuleDir]
	if !ok || e.shadowPath != shadowPath || e.src != src {
		return nil, nil, false
	}
	return e.diags, e.notices, true
}

func (s *Session) store(stubModuleDir, shadowPath, src string, diags []diagnostics.Raw, notices []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[stubModuleDir] = cacheEntry{shadowPath: shadowPath, src: src, diags: diags, notices: notices}
}
