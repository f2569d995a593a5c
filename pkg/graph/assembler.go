// Package graph builds a deduplicated, clustered, labeled knowledge graph
// from already-materialized tab records.
//
// The engine is a pure, synchronous batch transform: it performs no I/O,
// holds no state between invocations, and produces identical output for
// identical input order. Capturing tabs, crawling content, generating
// embeddings and persisting results are all caller concerns.
package graph

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Avi-141/tabby/pkg/metrics"
	"github.com/Avi-141/tabby/pkg/textsig"
	"github.com/Avi-141/tabby/pkg/urlnorm"
)

// Assembler orchestrates a full graph rebuild:
// dedup → similarity → clustering → labeling → edges.
type Assembler struct {
	cfg Config
	log *slog.Logger
}

// NewAssembler returns an assembler for the given configuration.
// A nil logger falls back to slog.Default().
func NewAssembler(cfg Config, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{cfg: cfg, log: logger}
}

// Rebuild recomputes the whole graph from scratch over the given snapshot.
//
// Tabs are mutated in place, but only on the engine-owned fields:
// DuplicateOf, GroupID, Keywords, Fingerprint, plus backfilling an empty
// CanonicalURL/Domain. Edge and Group collections are produced fresh on
// every call; nothing survives between invocations.
//
// An empty snapshot yields an empty, valid result rather than an error.
func (a *Assembler) Rebuild(tabs []*Tab, events []NavigationEvent) (*Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	start := time.Now()

	a.enrich(tabs)

	// 1. Dedup over the full corpus.
	primaryMap, duplicates := Dedupe(tabs, a.cfg.DedupeHamming)
	primaries := make([]*Tab, 0, len(tabs))
	for _, tab := range tabs {
		if tab.IsPrimary() {
			primaries = append(primaries, tab)
		}
	}

	// 2. Similarity and clustering over primaries only.
	matrix := BuildMatrix(primaries, a.cfg.DomainBonus)
	groups, groupOf := Cluster(primaries, matrix, a.cfg)

	// 3. Labels, with the IDF table scoped to this rebuild.
	docs := make([][]string, len(primaries))
	byID := make(map[string]*Tab, len(primaries))
	for i, tab := range primaries {
		docs[i] = tab.Keywords
		byID[tab.ID] = tab
	}
	idf := ComputeIDF(docs)
	for _, g := range groups {
		members := make([]*Tab, 0, len(g.TabIDs))
		for _, id := range g.TabIDs {
			members = append(members, byID[id])
		}
		g.Label = LabelGroup(members, idf)
	}
	for _, tab := range primaries {
		tab.GroupID = groupOf[tab.ID]
	}

	// 4. Edges: inferred similarity between primaries, plus observed
	// navigation routed through the primary map.
	simEdges := BuildSimilarityEdges(primaries, matrix, a.cfg.EdgeThreshold)
	navEdges := BuildNavigationEdges(tabs, events, primaryMap)
	edges := MergeEdges(simEdges, navEdges, a.cfg.NavigationPriority)

	// 5. Duplicates inherit their primary's group; they never get one of
	// their own, and group TabIDs stay primary-only.
	for _, tab := range tabs {
		if tab.IsPrimary() {
			continue
		}
		tab.GroupID = groupOf[primaryMap[tab.ID]]
	}

	stats := RebuildStats{
		TabCount:     len(tabs),
		PrimaryCount: len(primaries),
		GroupCount:   len(groups),
		EdgeCount:    len(edges),
		Duplicates:   duplicates,
		Elapsed:      time.Since(start),
	}

	metrics.RebuildsTotal.Inc()
	metrics.RebuildDuration.Observe(stats.Elapsed.Seconds())
	metrics.TabsTotal.Set(float64(stats.TabCount))
	metrics.GroupsTotal.Set(float64(stats.GroupCount))
	metrics.EdgesTotal.Set(float64(stats.EdgeCount))
	metrics.DuplicatesTotal.Set(float64(stats.Duplicates))

	a.log.Info("graph rebuilt",
		"tabs", stats.TabCount,
		"primaries", stats.PrimaryCount,
		"groups", stats.GroupCount,
		"edges", stats.EdgeCount,
		"duplicates", stats.Duplicates,
		"elapsed", stats.Elapsed,
	)

	return &Result{
		Tabs:       tabs,
		Groups:     groups,
		Edges:      edges,
		PrimaryMap: primaryMap,
		Stats:      stats,
	}, nil
}

// enrich backfills the signals the engine derives itself. Previous dedup
// and group assignments are cleared first so a rebuild never inherits
// stale state from an earlier run.
func (a *Assembler) enrich(tabs []*Tab) {
	for _, tab := range tabs {
		tab.DuplicateOf = ""
		tab.GroupID = ""

		if tab.CanonicalURL == "" && tab.URL != "" {
			tab.CanonicalURL = urlnorm.Canonicalize(tab.URL)
		}
		if tab.Domain == "" && tab.URL != "" {
			tab.Domain = urlnorm.Domain(tab.URL)
		}

		// A tab whose content extraction failed upstream still takes
		// part in dedup (canonical URL) and clustering (domain bonus),
		// just with a weaker signal.
		text := tab.Title + " " + tab.Text
		if len(tab.Keywords) == 0 {
			tab.Keywords = textsig.ExtractKeywords(text, a.cfg.KeywordCount)
		}
		if tab.Fingerprint == nil {
			if fp, ok := textsig.ComputeFingerprint(textsig.Tokenize(text)); ok {
				tab.Fingerprint = &fp
			}
		}
	}
}
