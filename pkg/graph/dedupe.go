package graph

import (
	"sort"

	"github.com/tidwall/btree"

	"github.com/Avi-141/tabby/pkg/textsig"
	"github.com/Avi-141/tabby/pkg/urlnorm"
)

// Dedupe folds near-identical tabs into equivalence classes over the whole
// corpus (imported and previously-duplicate records included).
//
// Two merge rules feed one union-find:
//  1. exact identity: equal canonical URL strings (first-seen tab per
//     canonical URL is the union anchor);
//  2. near-duplicate: same nonempty domain and simhash Hamming distance
//     within hammingThreshold, when both fingerprints are present.
//
// Each class's primary is its smallest-index member, so the outcome is
// stable against input order. Every non-primary is stamped with
// DuplicateOf and its URL is collected into the primary's Aliases.
//
// Returns a map from every tab id to its primary's id, plus the number of
// duplicates found.
func Dedupe(tabs []*Tab, hammingThreshold int) (map[string]string, int) {
	uf := newUnionFind(len(tabs))

	// Rule 1: exact canonical URL identity. The btree keeps the index
	// ordered, which makes debugging dumps deterministic.
	var canonIndex btree.Map[string, int]
	for idx, tab := range tabs {
		canonical := tab.CanonicalURL
		if canonical == "" {
			canonical = urlnorm.Canonicalize(tab.URL)
			tab.CanonicalURL = canonical
		}
		if canonical == "" {
			continue
		}
		if anchor, ok := canonIndex.Get(canonical); ok {
			uf.union(idx, anchor)
		} else {
			canonIndex.Set(canonical, idx)
		}
	}

	// Rule 2: same-domain simhash proximity.
	for i := 0; i < len(tabs); i++ {
		if tabs[i].Fingerprint == nil || tabs[i].Domain == "" {
			continue
		}
		for j := i + 1; j < len(tabs); j++ {
			if tabs[j].Fingerprint == nil || tabs[i].Domain != tabs[j].Domain {
				continue
			}
			if textsig.HammingDistance(tabs[i].Fingerprint, tabs[j].Fingerprint) <= hammingThreshold {
				uf.union(i, j)
			}
		}
	}

	primaryMap := make(map[string]string, len(tabs))
	duplicates := 0
	for _, members := range uf.classes() {
		primary := tabs[members[0]] // members are in ascending index order
		for _, idx := range members {
			primaryMap[tabs[idx].ID] = primary.ID
		}
		if len(members) == 1 {
			continue
		}

		aliases := make(map[string]struct{}, len(primary.Aliases)+len(members)-1)
		for _, url := range primary.Aliases {
			aliases[url] = struct{}{}
		}
		for _, idx := range members[1:] {
			dup := tabs[idx]
			duplicates++
			dup.DuplicateOf = primary.ID
			if dup.URL != "" {
				aliases[dup.URL] = struct{}{}
			}
			if dup.CanonicalURL == "" {
				dup.CanonicalURL = primary.CanonicalURL
			}
		}
		primary.Aliases = make([]string, 0, len(aliases))
		for url := range aliases {
			primary.Aliases = append(primary.Aliases, url)
		}
		sort.Strings(primary.Aliases)
	}
	return primaryMap, duplicates
}
