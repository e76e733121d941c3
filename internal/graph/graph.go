// Package graph derives the static weighted directed semantic graph from
// internal/ontology and exposes it for traversal by internal/expand. The
// graph is built once via a package-level sync.Once and is immutable
// thereafter (§4.2).
package graph

import (
	"sort"
	"strings"
	"sync"

	"github.com/triagehq/logtriage/internal/ontology"
)

// Relation identifies the kind of a directed edge.
type Relation int

// Relation kinds, in tie-break priority order (§4.2): when two kinds
// connect the same pair, the higher kind in this list wins.
const (
	Morphological Relation = iota
	Synonym
	DomainPeer
	Hypernym
	Implication
)

func (r Relation) String() string {
	switch r {
	case Morphological:
		return "morphological"
	case Synonym:
		return "synonym"
	case DomainPeer:
		return "domain_peer"
	case Hypernym:
		return "hypernym"
	case Implication:
		return "implication"
	default:
		return "unknown"
	}
}

// Edge is one outgoing directed relation from a TermNode.
type Edge struct {
	Kind   Relation
	Target string
	Weight float64
}

// TermNode is one vertex of the semantic graph.
type TermNode struct {
	Term  string
	Edges []Edge
}

// Graph is the immutable, derived semantic graph.
type Graph struct {
	nodes map[string]*TermNode
}

// Node returns the node for term, or nil if term is not part of the graph.
func (g *Graph) Node(term string) *TermNode {
	return g.nodes[strings.ToLower(term)]
}

// Terms returns every term present as a node, in no particular order.
func (g *Graph) Terms() []string {
	out := make([]string, 0, len(g.nodes))
	for t := range g.nodes {
		out = append(out, t)
	}
	return out
}

var (
	once  sync.Once
	built *Graph
)

// Get returns the process-wide graph, building it from internal/ontology on
// first use.
func Get() *Graph {
	once.Do(func() {
		built = build(ontology.Clusters)
	})
	return built
}

// reverseDefaultFactor is applied to a domain-peer's forward weight when no
// explicit reverse weight is given (§4.2).
const reverseDefaultFactor = 0.4

type pendingEdge struct {
	from, to string
	kind     Relation
	weight   float64
}

func build(clusters []ontology.Cluster) *Graph {
	nodes := make(map[string]*TermNode)
	ensure := func(term string) *TermNode {
		term = strings.ToLower(term)
		n, ok := nodes[term]
		if !ok {
			n = &TermNode{Term: term}
			nodes[term] = n
		}
		return n
	}

	var pending []pendingEdge

	for _, c := range clusters {
		seed := strings.ToLower(c.Seed)
		ensure(seed)

		for _, m := range c.Morphological {
			m = strings.ToLower(m)
			ensure(m)
			pending = append(pending,
				pendingEdge{seed, m, Morphological, 1.0},
				pendingEdge{m, seed, Morphological, 1.0},
			)
		}
		for _, y := range c.Synonyms {
			y = strings.ToLower(y)
			ensure(y)
			pending = append(pending,
				pendingEdge{seed, y, Synonym, 0.9},
				pendingEdge{y, seed, Synonym, 0.9},
			)
		}
		for _, p := range c.Peers {
			target := strings.ToLower(p.Term)
			ensure(target)
			rw := p.ReverseWeight
			if rw == 0 {
				rw = p.Weight * reverseDefaultFactor
			}
			pending = append(pending,
				pendingEdge{seed, target, DomainPeer, p.Weight},
				pendingEdge{target, seed, DomainPeer, rw},
			)
		}
		for _, h := range c.Hypernyms {
			h = strings.ToLower(h)
			ensure(h)
			pending = append(pending, pendingEdge{seed, h, Hypernym, 0.6})
		}
		for _, im := range c.Implications {
			im = strings.ToLower(im)
			ensure(im)
			pending = append(pending, pendingEdge{seed, im, Implication, 0.5})
		}
	}

	// Collapse duplicate (from,to) pairs per the tie-break rule: keep the
	// higher weight, then prefer the earlier-priority kind.
	type key struct{ from, to string }
	best := make(map[key]pendingEdge)
	for _, e := range pending {
		k := key{e.from, e.to}
		cur, ok := best[k]
		if !ok || e.weight > cur.weight || (e.weight == cur.weight && e.kind < cur.kind) {
			best[k] = e
		}
	}

	for k, e := range best {
		n := nodes[k.from]
		n.Edges = append(n.Edges, Edge{Kind: e.kind, Target: e.to, Weight: e.weight})
	}
	for _, n := range nodes {
		sort.Slice(n.Edges, func(i, j int) bool {
			if n.Edges[i].Kind != n.Edges[j].Kind {
				return n.Edges[i].Kind < n.Edges[j].Kind
			}
			return n.Edges[i].Target < n.Edges[j].Target
		})
	}

	return &Graph{nodes: nodes}
}
