package graph

import (
	"math"
	"sort"
	"strings"
)

// labelDomainShare is the fraction of a group's domain-bearing tabs one
// domain must reach for the group to simply be named after it.
const labelDomainShare = 0.55

// labelTermCount is how many TF-IDF terms a keyword-derived label joins.
const labelTermCount = 3

// labelFallback names groups with no usable domain or keywords.
const labelFallback = "group"

// ComputeIDF computes smoothed inverse document frequency over keyword
// lists: ln((1+N)/(1+df)) + 1. One list = one document. The table is an
// explicit value scoped to a single rebuild, never ambient state.
func ComputeIDF(docs [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	idf := make(map[string]float64, len(df))
	n := float64(len(docs))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}
	return idf
}

// LabelGroup derives a human-readable name for a group of tabs.
//
// If one domain covers at least 55% of the tabs that have a domain, the
// label is that domain. Otherwise the members' keywords are pooled and the
// top 3 by TF×IDF (ties broken by first occurrence) are joined with " / ".
// Groups with no usable signal are labeled "group".
func LabelGroup(tabs []*Tab, idf map[string]float64) string {
	domainCounts := make(map[string]int)
	withDomain := 0
	topDomain, topCount := "", 0
	for _, tab := range tabs {
		if tab.Domain == "" {
			continue
		}
		withDomain++
		domainCounts[tab.Domain]++
		if domainCounts[tab.Domain] > topCount {
			topDomain, topCount = tab.Domain, domainCounts[tab.Domain]
		}
	}
	if withDomain > 0 && float64(topCount)/float64(withDomain) >= labelDomainShare {
		return topDomain
	}

	// Pool every member keyword into one multiset.
	tf := make(map[string]int)
	var order []string
	for _, tab := range tabs {
		for _, term := range tab.Keywords {
			if tf[term] == 0 {
				order = append(order, term)
			}
			tf[term]++
		}
	}
	if len(order) == 0 {
		return labelFallback
	}
	sort.SliceStable(order, func(i, j int) bool {
		return float64(tf[order[i]])*idf[order[i]] > float64(tf[order[j]])*idf[order[j]]
	})
	if len(order) > labelTermCount {
		order = order[:labelTermCount]
	}
	return strings.Join(order, " / ")
}
