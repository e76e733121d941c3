// Package query implements the parse/expand/scan/rank pipeline (§4.5):
// the layer that sits inside a View and turns free text plus a greed level
// into a ranked list of matching sequence numbers.
package query

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/triagehq/logtriage/internal/expand"
	"github.com/triagehq/logtriage/internal/store"
)

// Result is one ranked match.
type Result struct {
	Seq   int64
	Score float64
}

// Weights holds the ranking tunables (§4.5 step 4, §6 rank_alpha/rank_beta).
type Weights struct {
	Alpha float64
	Beta  float64
}

// DefaultWeights matches spec.md's tunable defaults.
var DefaultWeights = Weights{Alpha: 1.0, Beta: 0.25}

// tokenMatch is one bare term's expansion, used as an OR-set during scan.
type tokenMatch struct {
	terms []string
}

// Execute runs the full pipeline against s: parse text, expand each bare
// term at the effective greed, scan the Store under scopeFilter plus any
// parsed field/within constraints, and rank the matches.
func Execute(ctx context.Context, s *store.Store, text string, defaultGreed int, scopeFilter store.Filter, w Weights) ([]Result, error) {
	parsed, err := Parse(text)
	if err != nil {
		return nil, err
	}

	greed := defaultGreed
	if parsed.Greed >= 0 {
		greed = parsed.Greed
	}

	tokens := make([]tokenMatch, 0, len(parsed.Terms))
	for _, term := range parsed.Terms {
		if greed == 0 {
			tokens = append(tokens, tokenMatch{terms: []string{strings.ToLower(term)}})
			continue
		}
		results := expand.Expand(term, greed)
		terms := make([]string, 0, len(results))
		for _, r := range results {
			terms = append(terms, r.Term)
		}
		tokens = append(tokens, tokenMatch{terms: terms})
	}

	var since time.Time
	if parsed.Within > 0 {
		since = time.Now().Add(-parsed.Within)
	}

	minSeq, nextSeq := s.Bounds()
	maxSeq := nextSeq - 1

	cur := s.Range(minSeq, nextSeq, scopeFilter)
	var out []Result
	for {
		e, ok := cur.Next(ctx)
		if !ok {
			break
		}
		if !since.IsZero() && e.Time.Before(since) {
			continue
		}
		if !matchesFields(&e, parsed.Fields) {
			continue
		}
		matched, ok := matchAllTokens(&e, tokens)
		if !ok {
			continue
		}
		out = append(out, Result{
			Seq:   e.Seq,
			Score: score(&e, matched, minSeq, maxSeq, w),
		})
	}

	rank(out)
	return out, nil
}

// matchAllTokens requires every token to match (AND across tokens); within
// a token, any expanded term matching is enough (OR within a token's
// expansion). It returns the set of distinct expanded terms that matched,
// across all tokens, for use in the density score.
func matchAllTokens(e *store.Entry, tokens []tokenMatch) (matched map[string]bool, ok bool) {
	matched = make(map[string]bool)
	for _, tok := range tokens {
		tokenMatched := false
		for _, term := range tok.terms {
			if containsFold(e.Message, term) || fieldsContain(e, term) {
				matched[term] = true
				tokenMatched = true
			}
		}
		if !tokenMatched {
			return nil, false
		}
	}
	return matched, true
}

func fieldsContain(e *store.Entry, term string) bool {
	for _, f := range e.Fields {
		if containsFold(f.Value, term) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesFields(e *store.Entry, constraints []fieldConstraint) bool {
	for _, c := range constraints {
		switch c.key {
		case "producer":
			if !strings.EqualFold(e.Producer, c.value) {
				return false
			}
		case "level":
			if !e.HasLevel || !strings.EqualFold(e.Level.String(), c.value) {
				return false
			}
		default:
			v, ok := e.FieldValue(c.key)
			if !ok || v != c.value {
				return false
			}
		}
	}
	return true
}

func score(e *store.Entry, matched map[string]bool, minSeq, maxSeq int64, w Weights) float64 {
	density := float64(len(matched)) / (1 + float64(len(e.Message))/1024)
	var recency float64
	if maxSeq > minSeq {
		recency = float64(e.Seq-minSeq) / float64(maxSeq-minSeq)
	}
	return w.Alpha*density + w.Beta*recency
}

// rank sorts results by score descending, ties broken by higher seq first.
func rank(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Seq > results[j].Seq
	})
}
