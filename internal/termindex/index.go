// Package termindex provides a prefix/infix lookup over the terms present
// in the semantic graph. Matches are case-insensitive; terms are folded to
// lowercase at insertion time (§4.3).
package termindex

import (
	"sort"
	"strings"
	"sync"
)

// Index is a sorted-slice index supporting O(log n + k) prefix scans (a
// binary search to the prefix's start, then a linear walk of the matching
// run) and O(n) infix contains-scans. The term set is small and static
// (a couple hundred entries), so a sorted slice is simpler and just as fast
// in practice as a trie, with no heap churn on the hot path beyond the
// result slice itself.
type Index struct {
	mu    sync.RWMutex
	terms []string // sorted, lowercase, deduplicated
}

// New builds an Index over terms, folding each to lowercase.
func New(terms []string) *Index {
	idx := &Index{}
	idx.Load(terms)
	return idx
}

// Load replaces the index's contents. Safe to call after construction to
// rebuild against a refreshed term set, though the core never does this at
// runtime (the ontology is static).
func (idx *Index) Load(terms []string) {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(t)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)

	idx.mu.Lock()
	idx.terms = out
	idx.mu.Unlock()
}

// PrefixScan returns every indexed term starting with p (case-insensitive).
func (idx *Index) PrefixScan(p string) []string {
	p = strings.ToLower(p)
	if p == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	start := sort.SearchStrings(idx.terms, p)
	var out []string
	for i := start; i < len(idx.terms) && strings.HasPrefix(idx.terms[i], p); i++ {
		out = append(out, idx.terms[i])
	}
	return out
}

// InfixScan returns every indexed term containing p anywhere (case-insensitive).
func (idx *Index) InfixScan(p string) []string {
	p = strings.ToLower(p)
	if p == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []string
	for _, t := range idx.terms {
		if strings.Contains(t, p) {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether t is present in the index.
func (idx *Index) Contains(t string) bool {
	t = strings.ToLower(t)
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	i := sort.SearchStrings(idx.terms, t)
	return i < len(idx.terms) && idx.terms[i] == t
}
