package graph

import "time"

// Tab source tags, distinguishing live-captured records from re-imported
// graph documents.
const (
	SourceLive   = "live"
	SourceImport = "import"
)

// Edge reasons.
const (
	// ReasonSimilarity marks an edge inferred from content similarity.
	ReasonSimilarity = "similarity"
	// ReasonSimilarityDomain marks a similarity edge whose endpoints
	// share a domain.
	ReasonSimilarityDomain = "similarity+domain"
	// ReasonNavigation marks an edge observed from an actual navigation
	// event. Navigation always wins over inferred similarity on merge.
	ReasonNavigation = "navigation"
)

// Tab is one browser tab (or imported record) flowing through the engine.
//
// The engine mutates a Tab only to set DuplicateOf, GroupID, Keywords and
// Fingerprint (plus backfilling an empty CanonicalURL/Domain); everything
// else is owned by the capture/import collaborators.
type Tab struct {
	// ID is an opaque, stable identity assigned by the caller.
	ID string

	URL          string
	CanonicalURL string
	Domain       string
	Title        string
	// Text is a bounded excerpt; truncation happens upstream.
	Text string

	// Keywords are extraction-ordered; the engine fills them from
	// Title+Text when the caller left them empty.
	Keywords []string

	// Fingerprint is the 64-bit simhash, nil when no tokens were
	// available.
	Fingerprint *uint64

	// Embedding is an optional fixed-length vector. Nil and all-zero
	// behave identically (similarity falls back to keyword Jaccard).
	Embedding []float32

	// GroupID is assigned by clustering ("" = none). A tab with
	// DuplicateOf set never receives a group of its own; it inherits
	// its primary's group.
	GroupID string

	// DuplicateOf is the ID of this tab's primary, "" when the tab is
	// itself primary.
	DuplicateOf string

	// Aliases collects the URLs of duplicates folded into this primary.
	Aliases []string

	Source string
}

// IsPrimary reports whether the tab is the representative of its
// deduplication class.
func (t *Tab) IsPrimary() bool { return t.DuplicateOf == "" }

// Edge connects two tabs. The pair is unordered for identity purposes;
// navigation edges keep their observed source→target orientation.
type Edge struct {
	Source string
	Target string
	// Weight is unbounded above: the domain bonus can push a
	// cosine/Jaccard similarity past 1.0.
	Weight float64
	Reason string
	// Timestamp is set on navigation edges only.
	Timestamp time.Time
}

// Group is a cluster of primary tabs with a derived label.
type Group struct {
	// ID is "group_N", assigned in discovery order.
	ID string
	// Label is derived by the labeling engine, never user-set.
	Label string
	// TabIDs lists primary tabs only; duplicates inherit the group id
	// through their primary but are never members themselves.
	TabIDs []string
	Size   int
}

// NavigationEvent is one observed transition between two URLs, supplied by
// the browser-capture collaborator.
type NavigationEvent struct {
	SourceURL string
	TargetURL string
	Timestamp time.Time
}

// RebuildStats summarizes one rebuild.
type RebuildStats struct {
	TabCount     int
	PrimaryCount int
	GroupCount   int
	EdgeCount    int
	Duplicates   int
	Elapsed      time.Duration
}

// Result is the full output of one rebuild. Edge and Group collections are
// recomputed wholesale on every invocation; nothing is patched
// incrementally.
type Result struct {
	Tabs   []*Tab
	Groups []*Group
	Edges  []Edge
	// PrimaryMap maps every tab id to its primary's id (identity for
	// primaries).
	PrimaryMap map[string]string
	Stats      RebuildStats
}
