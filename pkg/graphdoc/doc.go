// Package graphdoc defines the persisted/exchanged graph document: a
// stable, versioned JSON schema whose tab, group and edge ids are
// positional integers resolved against the tabs array.
//
// The engine works with opaque string ids; this package is the boundary
// layer that translates between the two, and it is the only place where
// ids are minted for imported records.
package graphdoc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Avi-141/tabby/pkg/graph"
)

// SchemaVersion is the current exchange schema. Documents with any other
// version are rejected on import.
const SchemaVersion = 1

// Document is the on-disk / on-the-wire graph representation.
type Document struct {
	SchemaVersion int     `json:"schema_version"`
	GeneratedAt   string  `json:"generated_at"`
	Source        string  `json:"source,omitempty"`
	Stats         Stats   `json:"stats"`
	Tabs          []Tab   `json:"tabs"`
	Groups        []Group `json:"groups"`
	Edges         []Edge  `json:"edges"`
}

// Stats mirrors graph.RebuildStats for consumers that only want counts.
type Stats struct {
	TabCount   int `json:"tab_count"`
	GroupCount int `json:"group_count"`
	EdgeCount  int `json:"edge_count"`
	Duplicates int `json:"duplicates"`
}

// Tab is one exported tab. ID is the tab's position in the tabs array.
// Simhash is the decimal form of the 64-bit fingerprint, null when absent.
type Tab struct {
	ID           int      `json:"id"`
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Domain       string   `json:"domain"`
	CanonicalURL string   `json:"canonical_url"`
	Keywords     []string `json:"keywords"`
	Simhash      *string  `json:"simhash"`
	GroupID      *int     `json:"group_id"`
	Source       string   `json:"source"`
}

// Group references member tabs by position.
type Group struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	TabIDs []int  `json:"tab_ids"`
	Size   int    `json:"size"`
}

// Edge references its endpoints by tab position.
type Edge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
	Reason string  `json:"reason"`
}

// Encode translates a rebuild result into the exchange document.
// Embeddings are never exported; text excerpts stay with the caller.
func Encode(res *graph.Result, source string) *Document {
	tabPos := make(map[string]int, len(res.Tabs))
	for i, tab := range res.Tabs {
		tabPos[tab.ID] = i
	}
	groupPos := make(map[string]int, len(res.Groups))
	for i, g := range res.Groups {
		groupPos[g.ID] = i
	}

	doc := &Document{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Source:        source,
		Stats: Stats{
			TabCount:   res.Stats.TabCount,
			GroupCount: res.Stats.GroupCount,
			EdgeCount:  res.Stats.EdgeCount,
			Duplicates: res.Stats.Duplicates,
		},
		Tabs:   make([]Tab, 0, len(res.Tabs)),
		Groups: make([]Group, 0, len(res.Groups)),
		Edges:  make([]Edge, 0, len(res.Edges)),
	}

	for i, tab := range res.Tabs {
		out := Tab{
			ID:           i,
			URL:          tab.URL,
			Title:        tab.Title,
			Domain:       tab.Domain,
			CanonicalURL: tab.CanonicalURL,
			Keywords:     tab.Keywords,
			Source:       tab.Source,
		}
		if tab.Fingerprint != nil {
			s := strconv.FormatUint(*tab.Fingerprint, 10)
			out.Simhash = &s
		}
		if pos, ok := groupPos[tab.GroupID]; ok {
			gid := pos
			out.GroupID = &gid
		}
		doc.Tabs = append(doc.Tabs, out)
	}

	for i, g := range res.Groups {
		ids := make([]int, 0, len(g.TabIDs))
		for _, id := range g.TabIDs {
			ids = append(ids, tabPos[id])
		}
		doc.Groups = append(doc.Groups, Group{
			ID:     i,
			Label:  g.Label,
			TabIDs: ids,
			Size:   len(ids),
		})
	}

	for _, e := range res.Edges {
		doc.Edges = append(doc.Edges, Edge{
			Source: tabPos[e.Source],
			Target: tabPos[e.Target],
			Weight: e.Weight,
			Reason: e.Reason,
		})
	}
	return doc
}

// Marshal serializes a document as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses a document without validating it; use Decode to turn it
// into engine records.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed graph document: %w", err)
	}
	return &doc, nil
}

// Decode validates a document and converts its tabs into engine records.
//
// Validation is atomic: any schema violation rejects the whole import with
// a descriptive error and produces no partial output. Imported tabs get
// fresh opaque ids (prefixed when prefix is nonempty) so re-importing a
// document can never collide with existing records.
func Decode(doc *Document, prefix string) ([]*graph.Tab, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	tabs := make([]*graph.Tab, 0, len(doc.Tabs))
	for _, in := range doc.Tabs {
		id := uuid.NewString()
		if prefix != "" {
			id = prefix + "_" + id
		}
		tab := &graph.Tab{
			ID:           id,
			URL:          in.URL,
			Title:        in.Title,
			Domain:       in.Domain,
			CanonicalURL: in.CanonicalURL,
			Keywords:     in.Keywords,
			Source:       graph.SourceImport,
		}
		if in.Simhash != nil {
			fp, _ := strconv.ParseUint(*in.Simhash, 10, 64) // checked by Validate
			tab.Fingerprint = &fp
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// Validate checks a document against the schema invariants.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("graph document is nil")
	}
	if doc.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported schema_version %d (want %d)", doc.SchemaVersion, SchemaVersion)
	}
	n := len(doc.Tabs)
	for i, tab := range doc.Tabs {
		if tab.ID != i {
			return fmt.Errorf("tab %d: id %d does not match its position", i, tab.ID)
		}
		if tab.Simhash != nil {
			if _, err := strconv.ParseUint(*tab.Simhash, 10, 64); err != nil {
				return fmt.Errorf("tab %d: simhash %q is not a 64-bit unsigned integer", i, *tab.Simhash)
			}
		}
		if tab.GroupID != nil && (*tab.GroupID < 0 || *tab.GroupID >= len(doc.Groups)) {
			return fmt.Errorf("tab %d: group_id %d out of range", i, *tab.GroupID)
		}
	}
	for i, g := range doc.Groups {
		if g.ID != i {
			return fmt.Errorf("group %d: id %d does not match its position", i, g.ID)
		}
		if g.Size != len(g.TabIDs) {
			return fmt.Errorf("group %d: size %d does not match %d member tabs", i, g.Size, len(g.TabIDs))
		}
		for _, tid := range g.TabIDs {
			if tid < 0 || tid >= n {
				return fmt.Errorf("group %d: tab id %d out of range", i, tid)
			}
		}
	}
	for i, e := range doc.Edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return fmt.Errorf("edge %d: endpoint out of range", i)
		}
		if e.Source == e.Target {
			return fmt.Errorf("edge %d: self-edge on tab %d", i, e.Source)
		}
	}
	return nil
}
