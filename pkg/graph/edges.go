package graph

import (
	"math"

	"github.com/tidwall/btree"

	"github.com/Avi-141/tabby/pkg/urlnorm"
)

// BuildSimilarityEdges emits an edge for every pair of tabs whose score
// meets threshold. Weights are rounded to 3 decimals; pairs with equal raw
// domain strings get the "similarity+domain" reason.
func BuildSimilarityEdges(tabs []*Tab, matrix [][]float64, threshold float64) []Edge {
	var edges []Edge
	for i := 0; i < len(tabs); i++ {
		for j := i + 1; j < len(tabs); j++ {
			weight := matrix[i][j]
			if weight < threshold {
				continue
			}
			reason := ReasonSimilarity
			if tabs[i].Domain == tabs[j].Domain {
				reason = ReasonSimilarityDomain
			}
			edges = append(edges, Edge{
				Source: tabs[i].ID,
				Target: tabs[j].ID,
				Weight: math.Round(weight*1000) / 1000,
				Reason: reason,
			})
		}
	}
	return edges
}

// BuildNavigationEdges converts observed navigation events into edges.
// Each endpoint URL resolves through a canonical-URL index (raw URL as
// fallback) and is then routed to its dedup primary, so a navigation from
// a duplicate lands on the surviving tab. Events whose endpoints do not
// both resolve, or resolve to the same tab, are dropped.
func BuildNavigationEdges(tabs []*Tab, events []NavigationEvent, primaryMap map[string]string) []Edge {
	var byCanonical btree.Map[string, string]
	var byRaw btree.Map[string, string]
	for _, tab := range tabs {
		if tab.CanonicalURL != "" {
			if _, taken := byCanonical.Get(tab.CanonicalURL); !taken {
				byCanonical.Set(tab.CanonicalURL, tab.ID)
			}
		}
		if tab.URL != "" {
			if _, taken := byRaw.Get(tab.URL); !taken {
				byRaw.Set(tab.URL, tab.ID)
			}
		}
	}

	resolve := func(url string) (string, bool) {
		if id, ok := byCanonical.Get(urlnorm.Canonicalize(url)); ok {
			return id, true
		}
		if id, ok := byRaw.Get(url); ok {
			return id, true
		}
		return "", false
	}

	var edges []Edge
	for _, ev := range events {
		source, okS := resolve(ev.SourceURL)
		target, okT := resolve(ev.TargetURL)
		if !okS || !okT {
			continue
		}
		if primary, ok := primaryMap[source]; ok {
			source = primary
		}
		if primary, ok := primaryMap[target]; ok {
			target = primary
		}
		if source == target {
			continue
		}
		edges = append(edges, Edge{
			Source:    source,
			Target:    target,
			Weight:    1.0,
			Reason:    ReasonNavigation,
			Timestamp: ev.Timestamp,
		})
	}
	return edges
}

// MergeEdges combines edge sets keyed by unordered endpoint pair, keeping
// at most one edge per pair. An existing edge survives unless the incoming
// one is a navigation edge and the existing one is not; an observed
// signal beats an inferred one (controlled by navigationPriority).
func MergeEdges(existing, incoming []Edge, navigationPriority bool) []Edge {
	type pair struct{ a, b string }
	key := func(e Edge) pair {
		if e.Source <= e.Target {
			return pair{e.Source, e.Target}
		}
		return pair{e.Target, e.Source}
	}

	out := make([]Edge, 0, len(existing)+len(incoming))
	index := make(map[pair]int, len(existing)+len(incoming))
	add := func(e Edge) {
		k := key(e)
		if at, seen := index[k]; seen {
			if navigationPriority && e.Reason == ReasonNavigation && out[at].Reason != ReasonNavigation {
				out[at] = e
			}
			return
		}
		index[k] = len(out)
		out = append(out, e)
	}
	for _, e := range existing {
		add(e)
	}
	for _, e := range incoming {
		add(e)
	}
	return out
}
