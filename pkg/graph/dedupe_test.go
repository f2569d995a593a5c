package graph

import (
	"slices"
	"testing"
)

func fp(v uint64) *uint64 { return &v }

func TestDedupeCanonicalURL(t *testing.T) {
	// A and B are the same page, modulo www and a trailing slash.
	tabs := []*Tab{
		{ID: "A", URL: "https://x.com/p"},
		{ID: "B", URL: "https://www.x.com/p/"},
	}
	primaryMap, duplicates := Dedupe(tabs, 3)

	if duplicates != 1 {
		t.Fatalf("duplicates = %d, want 1", duplicates)
	}
	if tabs[0].CanonicalURL != "https://x.com/p" || tabs[1].CanonicalURL != "https://x.com/p" {
		t.Errorf("canonical URLs = %q / %q, want both https://x.com/p",
			tabs[0].CanonicalURL, tabs[1].CanonicalURL)
	}
	if tabs[1].DuplicateOf != "A" {
		t.Errorf("B.DuplicateOf = %q, want A", tabs[1].DuplicateOf)
	}
	if tabs[0].DuplicateOf != "" {
		t.Errorf("primary A must stay unmarked, got %q", tabs[0].DuplicateOf)
	}
	if primaryMap["A"] != "A" || primaryMap["B"] != "A" {
		t.Errorf("primaryMap = %v, want both mapped to A", primaryMap)
	}
	if !slices.Contains(tabs[0].Aliases, "https://www.x.com/p/") {
		t.Errorf("primary should collect the duplicate URL as alias, got %v", tabs[0].Aliases)
	}
}

func TestDedupeFingerprint(t *testing.T) {
	t.Run("WithinThresholdMerges", func(t *testing.T) {
		// Fingerprints differing in 2 bits, same domain, threshold 3.
		tabs := []*Tab{
			{ID: "A", URL: "https://example.com/a", Domain: "example.com", Fingerprint: fp(0)},
			{ID: "B", URL: "https://example.com/b", Domain: "example.com", Fingerprint: fp(0b11)},
		}
		_, duplicates := Dedupe(tabs, 3)
		if duplicates != 1 {
			t.Fatalf("duplicates = %d, want 1", duplicates)
		}
		if tabs[1].DuplicateOf != "A" {
			t.Errorf("B.DuplicateOf = %q, want A", tabs[1].DuplicateOf)
		}
	})

	t.Run("BeyondThresholdStaysApart", func(t *testing.T) {
		// 10 differing bits.
		tabs := []*Tab{
			{ID: "A", URL: "https://example.com/a", Domain: "example.com", Fingerprint: fp(0)},
			{ID: "B", URL: "https://example.com/b", Domain: "example.com", Fingerprint: fp(0b1111111111)},
		}
		_, duplicates := Dedupe(tabs, 3)
		if duplicates != 0 {
			t.Fatalf("duplicates = %d, want 0", duplicates)
		}
	})

	t.Run("DifferentDomainsNeverMerge", func(t *testing.T) {
		tabs := []*Tab{
			{ID: "A", URL: "https://x.com/a", Domain: "x.com", Fingerprint: fp(0)},
			{ID: "B", URL: "https://y.com/b", Domain: "y.com", Fingerprint: fp(0)},
		}
		if _, duplicates := Dedupe(tabs, 3); duplicates != 0 {
			t.Errorf("identical fingerprints across domains must not merge")
		}
	})

	t.Run("AbsentFingerprintsNeverMerge", func(t *testing.T) {
		tabs := []*Tab{
			{ID: "A", URL: "https://x.com/a", Domain: "x.com"},
			{ID: "B", URL: "https://x.com/b", Domain: "x.com"},
		}
		if _, duplicates := Dedupe(tabs, 64); duplicates != 0 {
			t.Errorf("tabs without fingerprints must not merge via rule 2")
		}
	})
}

func TestDedupeTransitive(t *testing.T) {
	// A≡B through the canonical URL, B≡C through fingerprints: one class,
	// primary is the minimum-index member.
	tabs := []*Tab{
		{ID: "A", URL: "https://x.com/p", Domain: "x.com", Fingerprint: fp(0)},
		{ID: "B", URL: "https://www.x.com/p/", Domain: "x.com", Fingerprint: fp(0b1)},
		{ID: "C", URL: "https://x.com/other", Domain: "x.com", Fingerprint: fp(0b11)},
	}
	primaryMap, duplicates := Dedupe(tabs, 3)

	if duplicates != 2 {
		t.Fatalf("duplicates = %d, want 2", duplicates)
	}
	for _, id := range []string{"A", "B", "C"} {
		if primaryMap[id] != "A" {
			t.Errorf("primaryMap[%s] = %q, want A", id, primaryMap[id])
		}
	}
}

func TestDedupePrimaryIsMinIndex(t *testing.T) {
	// The union anchor is the later-seen tab only in union-find terms;
	// the primary must still be the smallest original index.
	tabs := []*Tab{
		{ID: "first", URL: "https://x.com/p"},
		{ID: "second", URL: "https://x.com/other"},
		{ID: "third", URL: "https://www.x.com/p/"},
	}
	primaryMap, _ := Dedupe(tabs, 3)
	if primaryMap["third"] != "first" {
		t.Errorf("primaryMap[third] = %q, want first", primaryMap["third"])
	}
	if tabs[1].DuplicateOf != "" {
		t.Errorf("unrelated tab must stay primary")
	}
}

func TestDedupeEmptyInput(t *testing.T) {
	primaryMap, duplicates := Dedupe(nil, 3)
	if len(primaryMap) != 0 || duplicates != 0 {
		t.Errorf("empty input should produce empty results, got %v / %d", primaryMap, duplicates)
	}
}
