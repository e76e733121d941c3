// Package expand implements the greed-gated expansion engine: a BFS over
// the semantic graph whose traversal thresholds are gated by a greed level
// in [0, 10], with a monotonicity guarantee, negative-prefix bias, and
// reliance on the graph's reverse edges for backwards resolvability (§4.4).
package expand

import (
	"sort"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/triagehq/logtriage/internal/graph"
	"github.com/triagehq/logtriage/internal/termindex"
)

// Result is one expanded term and its recorded score (the maximum product
// of edge weights over all paths that reached it).
type Result struct {
	Term  string
	Score float64
}

// negativePrefixes trigger the negative-prefix bias when term begins with
// one of these immediately followed by alphabetic characters (§4.4).
var negativePrefixes = []string{"un", "fail", "err", "invalid", "no"}

// biasSeeds are the cluster seeds activated by the negative-prefix bias.
var biasSeeds = []string{"error", "failure"}

var (
	idx   *termindex.Index
	cache = gocache.New(5*time.Minute, 10*time.Minute)
)

func index() *termindex.Index {
	if idx == nil {
		idx = termindex.New(graph.Get().Terms())
	}
	return idx
}

// Expand returns the greed-gated expansion of term at greed, deduplicated
// by term with each term's maximum score across all contributing paths.
// Deterministic and idempotent for a fixed ontology (§8).
func Expand(term string, greed int) []Result {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	cacheKey := term + "\x00" + strconv.Itoa(greed)
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]Result)
	}

	out := expand(term, greed)
	cache.Set(cacheKey, out, gocache.DefaultExpiration)
	return out
}

func expand(term string, greed int) []Result {
	if greed <= 0 {
		return []Result{{Term: term, Score: 1.0}}
	}

	th := thresholdsFor(greed)
	visited := map[string]float64{term: 1.0}

	for _, hit := range index().PrefixScan(term) {
		if visited[hit] < 1.0 {
			visited[hit] = 1.0
		}
	}

	boosted := make(map[string]bool)
	if hasNegativePrefix(term) {
		for _, seed := range biasSeeds {
			if _, ok := visited[seed]; !ok {
				visited[seed] = 1.0
			}
			boosted[seed] = true
		}
	}

	frontier := make([]string, 0, len(visited))
	for t := range visited {
		frontier = append(frontier, t)
	}

	for depth := 0; depth < th.maxDepth && len(frontier) > 0; depth++ {
		next := make(map[string]float64)
		for _, u := range frontier {
			node := graph.Get().Node(u)
			if node == nil {
				continue
			}
			uScore := visited[u]
			boost := 0.0
			if boosted[u] {
				boost = negativeBoost
			}
			for _, e := range node.Edges {
				if e.Weight+boost < th.minWeight {
					continue
				}
				newScore := uScore * e.Weight
				if cur, ok := visited[e.Target]; !ok || newScore > cur {
					visited[e.Target] = newScore
					next[e.Target] = newScore
				}
			}
		}
		frontier = frontier[:0]
		for t := range next {
			frontier = append(frontier, t)
		}
	}

	applyFreeMorphologicalClosure(visited)

	out := make([]Result, 0, len(visited))
	for t, s := range visited {
		out = append(out, Result{Term: t, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// applyFreeMorphologicalClosure extends visited with the morphological
// neighbours of every node already reached, regardless of depth — "for
// every node reached, also include its morphological children... even if
// that would exceed max_depth(G)" (§4.4). Morphological edges always carry
// weight 1.0, so a fixpoint pass is cheap and terminates: the morphological
// family of any term is a small, finite, static set.
func applyFreeMorphologicalClosure(visited map[string]float64) {
	for {
		changed := false
		frontier := make([]string, 0, len(visited))
		for t := range visited {
			frontier = append(frontier, t)
		}
		for _, u := range frontier {
			node := graph.Get().Node(u)
			if node == nil {
				continue
			}
			uScore := visited[u]
			for _, e := range node.Edges {
				if e.Kind != graph.Morphological {
					continue
				}
				newScore := uScore * e.Weight
				if cur, ok := visited[e.Target]; !ok || newScore > cur {
					visited[e.Target] = newScore
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

func hasNegativePrefix(term string) bool {
	for _, p := range negativePrefixes {
		if len(term) > len(p) && strings.HasPrefix(term, p) && isAlpha(term[len(p)]) {
			return true
		}
	}
	return false
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
